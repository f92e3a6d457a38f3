package task

import (
	"context"
)

// Repository defines the storage interface for appointments.
type Repository interface {
	// CreateTask adds a new appointment to the repository.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves an appointment by ID. Returns nil when not found.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// UpdateTask replaces the stored fields of an appointment.
	// Returns ErrTaskNotFound when the ID does not exist.
	UpdateTask(ctx context.Context, task *Task) error

	// DeleteTask removes an appointment.
	// Returns ErrTaskNotFound when the ID does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasks returns the full appointment collection in insertion order.
	// Calendar range filtering happens in memory so that string-only
	// deadlines are bucketed the same way as timestamped ones.
	ListTasks(ctx context.Context) ([]*Task, error)

	// Close releases any resources held by the repository.
	Close() error
}
