// Package schedule implements the calendar core: view state and navigation,
// date bucketing, pt-BR period labels and per-view render projections.
package schedule

import (
	"errors"
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
)

// ErrInvalidView is returned for unknown view names.
var ErrInvalidView = errors.New("view must be 'day', 'week', 'month' or 'year'")

// View is the calendar granularity being displayed.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
)

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return View(s), nil
	default:
		return "", ErrInvalidView
	}
}

// State is the calendar's only mutable state: the pivot date the view is
// centered on and the current granularity. Transitions return a new State;
// callers thread it through render passes instead of sharing globals.
type State struct {
	Pivot time.Time
	View  View
}

// NewState creates a State pivoted on now with the given view.
func NewState(now time.Time, view View) State {
	return State{Pivot: dateutil.TruncateToDay(now), View: view}
}

// Advance moves the pivot one period in the given direction (-1 or +1):
// a day, a week, a month or a year depending on the view. Month and year
// arithmetic follow time.AddDate day-overflow normalization (Jan 31 +1
// month lands in early March).
func (s State) Advance(direction int) State {
	switch s.View {
	case ViewDay:
		s.Pivot = s.Pivot.AddDate(0, 0, direction)
	case ViewWeek:
		s.Pivot = s.Pivot.AddDate(0, 0, 7*direction)
	case ViewMonth:
		s.Pivot = s.Pivot.AddDate(0, direction, 0)
	case ViewYear:
		s.Pivot = s.Pivot.AddDate(direction, 0, 0)
	}
	return s
}

// JumpToToday re-centers the pivot on today, keeping the view.
func (s State) JumpToToday(now time.Time) State {
	s.Pivot = dateutil.TruncateToDay(now)
	return s
}

// SetView switches the granularity, keeping the pivot.
func (s State) SetView(v View) State {
	s.View = v
	return s
}

// JumpToDate pivots on the given date and forces the month view. Activating
// a day cell in the year view lands here.
func (s State) JumpToDate(date time.Time) State {
	s.Pivot = dateutil.TruncateToDay(date)
	s.View = ViewMonth
	return s
}

// Range returns the inclusive date-only range the state makes visible.
func (s State) Range() (start, end time.Time) {
	switch s.View {
	case ViewDay:
		start = dateutil.TruncateToDay(s.Pivot)
		return start, start
	case ViewWeek:
		return dateutil.WeekRange(s.Pivot)
	case ViewMonth:
		return dateutil.MonthBounds(s.Pivot)
	default:
		return dateutil.YearBounds(s.Pivot)
	}
}

// Today returns now truncated to midnight, used for is-today highlighting.
func Today(now time.Time) time.Time {
	return dateutil.TruncateToDay(now)
}
