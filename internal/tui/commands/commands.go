// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelmartins/agendapet/internal/export"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// TasksLoadedMsg is sent when the appointment collection is loaded.
type TasksLoadedMsg struct {
	Tasks []*task.Task
}

// TaskSavedMsg is sent when an appointment is created or updated.
type TaskSavedMsg struct {
	Task    *task.Task
	Created bool
}

// TaskDeletedMsg is sent when an appointment is deleted.
type TaskDeletedMsg struct {
	ID int64
}

// ExportDoneMsg is sent when an export file has been written.
type ExportDoneMsg struct {
	Filename string
}

// CopiedMsg is sent when the export payload was placed on the clipboard.
type CopiedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadTasks loads the full appointment collection.
func LoadTasks(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.ListTasks(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading appointments: %w", err)}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

// SaveTask creates or updates an appointment.
func SaveTask(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if t.ID == 0 {
			if err := repo.CreateTask(ctx, t); err != nil {
				return ErrMsg{Err: fmt.Errorf("creating appointment: %w", err)}
			}
			return TaskSavedMsg{Task: t, Created: true}
		}
		if err := repo.UpdateTask(ctx, t); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating appointment: %w", err)}
		}
		return TaskSavedMsg{Task: t}
	}
}

// DeleteTask deletes an appointment by ID.
func DeleteTask(repo task.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteTask(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting appointment: %w", err)}
		}
		return TaskDeletedMsg{ID: id}
	}
}

// ExportCSV writes the CSV export into the working directory.
func ExportCSV(tasks []*task.Task) tea.Cmd {
	return func() tea.Msg {
		name := export.CSVFilename(time.Now())
		if err := os.WriteFile(name, []byte(export.CSV(tasks)), 0o644); err != nil {
			return ErrMsg{Err: fmt.Errorf("writing %s: %w", name, err)}
		}
		return ExportDoneMsg{Filename: name}
	}
}

// ExportICS writes the iCalendar export into the working directory.
func ExportICS(p *task.Parser, tasks []*task.Task) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		name := export.ICSFilename(now)
		if err := os.WriteFile(name, []byte(export.ICS(p, tasks, now)), 0o644); err != nil {
			return ErrMsg{Err: fmt.Errorf("writing %s: %w", name, err)}
		}
		return ExportDoneMsg{Filename: name}
	}
}

// CopyCSV places the CSV export on the system clipboard.
func CopyCSV(tasks []*task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(export.CSV(tasks)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{}
	}
}
