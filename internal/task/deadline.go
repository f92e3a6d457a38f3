package task

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// deadlineRe matches DD/MM/YYYY with an optional HH:mm suffix.
var deadlineRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2}))?`)

// hourOffsetRe matches a trailing "+Nh" adjustment suffix, e.g. "+2h".
var hourOffsetRe = regexp.MustCompile(`\+(\d{1,2})h\s*$`)

// HourOffsetFunc extracts a supplemental hour offset embedded in a deadline
// string. It returns false when the string carries no offset. The grammar is
// owned by the booking form, not by the parser.
type HourOffsetFunc func(deadline string) (hours int, ok bool)

// HourOffset is the default offset extractor: a trailing "+Nh" suffix.
func HourOffset(deadline string) (int, bool) {
	m := hourOffsetRe.FindStringSubmatch(deadline)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h == 0 {
		return 0, false
	}
	return h, true
}

// Parser resolves a task's raw deadline fields into a local wall-clock time.
//
// Results are memoized per task pointer together with a snapshot of the
// deadline fields they were computed from, so editing a task's deadline in
// place invalidates its cache entry instead of serving a stale date. The
// parser is owned by a single render loop and is not safe for concurrent use.
type Parser struct {
	hourOffset HourOffsetFunc
	cache      map[*Task]parseEntry
}

type parseEntry struct {
	deadline  string
	timestamp int64
	hasStamp  bool
	when      time.Time
	ok        bool
}

// NewParser creates a Parser. offset may be nil, in which case timestamps
// are never adjusted (the collaborator degrades to a no-op).
func NewParser(offset HourOffsetFunc) *Parser {
	return &Parser{
		hourOffset: offset,
		cache:      make(map[*Task]parseEntry),
	}
}

// Parse resolves the deadline of t to a local time.
// It returns ok=false when the task has no deadline or the deadline cannot
// be interpreted; such tasks are excluded from all calendar views.
//
// Resolution order:
//  1. DeadlineTimestamp, adjusted by the hour offset extracted from the
//     deadline string when one is present.
//  2. The deadline string in DD/MM/YYYY[ HH:mm] format.
func (p *Parser) Parse(t *Task) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}

	if entry, hit := p.cache[t]; hit && entry.fresh(t) {
		return entry.when, entry.ok
	}

	when, ok := p.resolve(t)
	p.cache[t] = newParseEntry(t, when, ok)
	return when, ok
}

// Forget drops the cache entry for t. Callers discard entries when tasks
// are removed so the cache does not outlive the task collection.
func (p *Parser) Forget(t *Task) {
	delete(p.cache, t)
}

// Reset drops all cache entries. Used when the task collection is reloaded.
func (p *Parser) Reset() {
	clear(p.cache)
}

func (p *Parser) resolve(t *Task) (time.Time, bool) {
	if t.DeadlineTimestamp != nil {
		when := time.UnixMilli(*t.DeadlineTimestamp)
		if t.Deadline != "" && p.hourOffset != nil {
			if hours, ok := p.hourOffset(t.Deadline); ok {
				when = when.Add(time.Duration(hours) * time.Hour)
			}
		}
		return when, true
	}

	if t.Deadline != "" && t.Deadline != DeadlineUndefined {
		return parseDeadlineString(t.Deadline)
	}

	return time.Time{}, false
}

// parseDeadlineString parses a DD/MM/YYYY[ HH:mm] deadline string.
// Components that would roll over (day 32, hour 25, minute 99) are rejected
// rather than normalized.
func parseDeadlineString(s string) (time.Time, bool) {
	m := deadlineRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	hour, minute := 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	}

	if month < 1 || month > 12 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	when := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if when.Day() != day || when.Month() != time.Month(month) || when.Year() != year {
		return time.Time{}, false
	}

	return when, true
}

// FormatDeadline renders a time in the booking form's DD/MM/YYYY HH:mm format.
func FormatDeadline(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func newParseEntry(t *Task, when time.Time, ok bool) parseEntry {
	entry := parseEntry{deadline: t.Deadline, when: when, ok: ok}
	if t.DeadlineTimestamp != nil {
		entry.timestamp = *t.DeadlineTimestamp
		entry.hasStamp = true
	}
	return entry
}

// fresh reports whether the entry was computed from the task's current
// deadline fields.
func (e parseEntry) fresh(t *Task) bool {
	if e.deadline != t.Deadline {
		return false
	}
	if e.hasStamp != (t.DeadlineTimestamp != nil) {
		return false
	}
	if e.hasStamp && e.timestamp != *t.DeadlineTimestamp {
		return false
	}
	return true
}
