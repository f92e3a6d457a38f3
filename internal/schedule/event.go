package schedule

import (
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// Event is an interaction produced by the presentation layer. Variants are
// consumed by Apply, which keeps navigation and modal-opening logic out of
// the rendering code.
type Event interface {
	isEvent()
}

// NavigatePrev moves one period back.
type NavigatePrev struct{}

// NavigateNext moves one period forward.
type NavigateNext struct{}

// JumpToday re-centers on today.
type JumpToday struct{}

// SetView switches the calendar granularity.
type SetView struct {
	View View
}

// ActivateTask requests the edit modal for an existing appointment.
type ActivateTask struct {
	ID int64
}

// ActivateSlot requests the create modal for a time slot. Day is the index
// within the displayed week for the week view, or -1 for the pivot day in
// the day view.
type ActivateSlot struct {
	Day    int
	Hour   int
	Minute int
}

// ActivateCell requests the create modal for a whole day cell, or — in the
// year view — drills into the month containing the cell.
type ActivateCell struct {
	Date time.Time
}

func (NavigatePrev) isEvent() {}
func (NavigateNext) isEvent() {}
func (JumpToday) isEvent()    {}
func (SetView) isEvent()      {}
func (ActivateTask) isEvent() {}
func (ActivateSlot) isEvent() {}
func (ActivateCell) isEvent() {}

// Draft is a pre-filled deadline for the create modal, matching the booking
// form's field pair.
type Draft struct {
	Deadline          string
	DeadlineTimestamp int64
}

// NewDraft builds a Draft for the given moment.
func NewDraft(when time.Time) Draft {
	return Draft{
		Deadline:          task.FormatDeadline(when),
		DeadlineTimestamp: when.UnixMilli(),
	}
}

// ActionKind discriminates the side effect an event asks for.
type ActionKind int

const (
	// ActionNone means the state change (if any) is the whole effect.
	ActionNone ActionKind = iota
	// ActionEdit opens the modal on an existing appointment.
	ActionEdit
	// ActionCreate opens the modal on a new draft.
	ActionCreate
)

// Action is the side effect requested by Apply.
type Action struct {
	Kind  ActionKind
	Task  *task.Task
	Draft Draft
}

// Deps are the collaborators Apply consults. A nil FindTask degrades task
// activation to a no-op; a nil Now defaults to time.Now.
type Deps struct {
	FindTask func(id int64) *task.Task
	Now      func() time.Time
}

// Apply dispatches one interaction event against the current state. It
// returns the next state and the requested side effect. Malformed or
// unresolvable targets degrade to a no-op: the state is returned unchanged
// with ActionNone.
func Apply(s State, ev Event, deps Deps) (State, Action) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	switch e := ev.(type) {
	case NavigatePrev:
		return s.Advance(-1), Action{}

	case NavigateNext:
		return s.Advance(+1), Action{}

	case JumpToday:
		return s.JumpToToday(now()), Action{}

	case SetView:
		if _, err := ParseView(string(e.View)); err != nil {
			return s, Action{}
		}
		return s.SetView(e.View), Action{}

	case ActivateTask:
		if deps.FindTask == nil {
			return s, Action{}
		}
		t := deps.FindTask(e.ID)
		if t == nil {
			return s, Action{}
		}
		return s, Action{Kind: ActionEdit, Task: t}

	case ActivateSlot:
		if e.Hour < 0 || e.Hour > 23 || e.Minute < 0 || e.Minute > 59 {
			return s, Action{}
		}
		day := s.Pivot
		if e.Day >= 0 {
			if e.Day > 6 {
				return s, Action{}
			}
			day = dateutil.WeekStart(s.Pivot).AddDate(0, 0, e.Day)
		}
		when := time.Date(day.Year(), day.Month(), day.Day(), e.Hour, e.Minute, 0, 0, day.Location())
		return s, Action{Kind: ActionCreate, Draft: NewDraft(when)}

	case ActivateCell:
		if e.Date.IsZero() {
			return s, Action{}
		}
		if s.View == ViewYear {
			return s.JumpToDate(e.Date), Action{}
		}
		return s, Action{Kind: ActionCreate, Draft: NewDraft(dateutil.TruncateToDay(e.Date))}

	default:
		return s, Action{}
	}
}
