package schedule

import (
	"strings"
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// DateKey identifies a calendar day with the time truncated. It is the
// bucket key: a task's key depends only on its normalized date's
// year/month/day.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the DateKey for a time.
func KeyOf(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the midnight local time for the key.
func (k DateKey) Time() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.Local)
}

// BucketByDay groups tasks by the calendar day of their parsed deadline in a
// single pass over the collection. Tasks without a parseable deadline or
// outside [start, end] (inclusive, date-only) are skipped. Input order is
// preserved within each bucket.
func BucketByDay(p *task.Parser, tasks []*task.Task, start, end time.Time) map[DateKey][]*task.Task {
	buckets := make(map[DateKey][]*task.Task)
	if len(tasks) == 0 {
		return buckets
	}

	startDay := dateutil.TruncateToDay(start)
	endDay := dateutil.TruncateToDay(end)

	for _, t := range tasks {
		when, ok := p.Parse(t)
		if !ok {
			continue
		}
		day := dateutil.TruncateToDay(when)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		key := KeyOf(day)
		buckets[key] = append(buckets[key], t)
	}

	return buckets
}

// FilterByDay returns the tasks whose parsed deadline falls on the given
// calendar day, preserving input order.
func FilterByDay(p *task.Parser, tasks []*task.Task, date time.Time) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		when, ok := p.Parse(t)
		if !ok {
			continue
		}
		if dateutil.SameDay(when, date) {
			out = append(out, t)
		}
	}
	return out
}

// FilterMatching returns the tasks matching a search term against client or
// pet name. Matching is case-insensitive; an empty term returns the input
// unchanged.
func FilterMatching(tasks []*task.Task, term string) []*task.Task {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return tasks
	}
	var out []*task.Task
	for _, t := range tasks {
		if t.Matches(term) {
			out = append(out, t)
		}
	}
	return out
}
