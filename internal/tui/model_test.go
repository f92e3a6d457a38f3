package tui

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelmartins/agendapet/internal/config"
	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// memRepo is an in-memory task.Repository for tests.
type memRepo struct {
	tasks  []*task.Task
	nextID int64
}

func (r *memRepo) CreateTask(_ context.Context, t *task.Task) error {
	r.nextID++
	t.ID = r.nextID
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *memRepo) GetTask(_ context.Context, id int64) (*task.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memRepo) UpdateTask(_ context.Context, t *task.Task) error {
	for i, existing := range r.tasks {
		if existing.ID == t.ID {
			r.tasks[i] = t
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (r *memRepo) DeleteTask(_ context.Context, id int64) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (r *memRepo) ListTasks(_ context.Context) ([]*task.Task, error) {
	return r.tasks, nil
}

func (r *memRepo) Close() error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(&memRepo{}, config.Default())
	m.loading = false
	m.width = 120
	m.height = 40
	m.now = func() time.Time {
		return time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)
	}
	m.state = schedule.NewState(m.now(), schedule.ViewWeek)
	return *m
}

func TestNewModelDefaults(t *testing.T) {
	m := New(&memRepo{}, config.Default())

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.state.View != schedule.ViewWeek {
		t.Errorf("view = %v, want week (config default)", m.state.View)
	}
	if !m.loading {
		t.Error("expected model to start loading")
	}
}

func TestNewModelHonorsConfiguredView(t *testing.T) {
	cfg := config.Default()
	cfg.UI.DefaultView = "month"

	m := New(&memRepo{}, cfg)
	if m.state.View != schedule.ViewMonth {
		t.Errorf("view = %v, want month", m.state.View)
	}
}

func TestFindTask(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana"},
		{ID: 2, Client: "Bruno"},
	}

	if got := m.findTask(2); got == nil || got.Client != "Bruno" {
		t.Errorf("findTask(2) = %+v, want Bruno", got)
	}
	if got := m.findTask(99); got != nil {
		t.Errorf("findTask(99) = %+v, want nil", got)
	}
}

func TestVisibleTasksFilter(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana", PetName: "Rex"},
		{ID: 2, Client: "Bruno", PetName: "Mimi"},
	}

	if got := m.visibleTasks(); len(got) != 2 {
		t.Fatalf("unfiltered = %d tasks, want 2", len(got))
	}

	m.searchTerm = "rex"
	got := m.visibleTasks()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("filtered = %+v, want only task 1", got)
	}
}

func TestPeriodEventsWeek(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana", Deadline: "10/06/2024 09:00"},
		{ID: 2, Client: "Bruno", Deadline: "12/06/2024 14:00"},
		{ID: 3, Client: "Carla", Deadline: "20/06/2024 14:00"}, // next week
	}

	events := m.periodEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].TaskID != 1 || events[1].TaskID != 2 {
		t.Errorf("unexpected order: %d, %d", events[0].TaskID, events[1].TaskID)
	}
}

func TestPeriodEventsMonthCoversAllWeeks(t *testing.T) {
	m := newTestModel(t)
	m.state = schedule.NewState(time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local), schedule.ViewMonth)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana", Deadline: "03/06/2024 09:00"},
		{ID: 2, Client: "Bruno", Deadline: "25/06/2024 14:00"}, // a later week
		{ID: 3, Client: "Carla", Deadline: "03/07/2024 10:00"}, // next month
	}

	rendered := 0
	for _, cell := range schedule.MonthCells(m.parser, m.tasks, m.state.Pivot, m.now()) {
		rendered += len(cell.Events)
	}
	if rendered != 2 {
		t.Fatalf("month grid renders %d appointments, want 2", rendered)
	}

	events := m.periodEvents()
	if len(events) != rendered {
		t.Fatalf("selection reaches %d of %d rendered month appointments", len(events), rendered)
	}
	if events[0].TaskID != 1 || events[1].TaskID != 2 {
		t.Errorf("unexpected order: %d, %d", events[0].TaskID, events[1].TaskID)
	}

	// The cursor can walk to the late-month appointment and edit it.
	m.selected = 1
	next := pressKey(t, m, "enter")
	if next.modalTask == nil || next.modalTask.ID != 2 {
		t.Errorf("enter on second event edits %+v, want task 2", next.modalTask)
	}
}

func TestPeriodEventsYearSpansMonths(t *testing.T) {
	m := newTestModel(t)
	m.state = schedule.NewState(time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local), schedule.ViewYear)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana", Deadline: "05/01/2024 09:00"},
		{ID: 2, Client: "Bruno", Deadline: "25/12/2024 14:00"},
		{ID: 3, Client: "Carla", Deadline: "01/01/2025 10:00"}, // next year
	}

	events := m.periodEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, want the january and december ones", len(events))
	}
	if events[0].TaskID != 1 || events[1].TaskID != 2 {
		t.Errorf("unexpected order: %d, %d", events[0].TaskID, events[1].TaskID)
	}
}
