// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rafaelmartins/agendapet/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateTask adds a new appointment to the repository.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO agendamentos (
			client, pet_name, contact, type, price, payment_status,
			deadline, deadline_timestamp, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, query,
		t.Client,
		t.PetName,
		t.Contact,
		t.Type,
		t.Price,
		string(t.PaymentStatus),
		t.Deadline,
		nullableInt64(t.DeadlineTimestamp),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

// GetTask retrieves an appointment by ID. Returns nil when not found.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := selectColumns + ` WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying appointment: %w", err)
	}
	return t, nil
}

// UpdateTask replaces the stored fields of an appointment.
func (s *SQLite) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE agendamentos
		SET client = ?, pet_name = ?, contact = ?, type = ?, price = ?,
		    payment_status = ?, deadline = ?, deadline_timestamp = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Client,
		t.PetName,
		t.Contact,
		t.Type,
		t.Price,
		string(t.PaymentStatus),
		t.Deadline,
		nullableInt64(t.DeadlineTimestamp),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes an appointment.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM agendamentos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// ListTasks returns the full appointment collection in insertion order.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}

	return tasks, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const selectColumns = `
	SELECT id, client, pet_name, contact, type, price, payment_status,
	       deadline, deadline_timestamp, created_at
	FROM agendamentos
`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		payment   string
		stamp     sql.NullInt64
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Client,
		&t.PetName,
		&t.Contact,
		&t.Type,
		&t.Price,
		&payment,
		&t.Deadline,
		&stamp,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.PaymentStatus = task.PaymentStatus(payment)
	if stamp.Valid {
		t.DeadlineTimestamp = &stamp.Int64
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = parsed
	}

	return &t, nil
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
