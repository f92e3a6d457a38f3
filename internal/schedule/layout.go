package schedule

import (
	"fmt"
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
	"github.com/rafaelmartins/agendapet/internal/task"
)

const (
	// MinutesPerDay is the vertical extent of the day/week timeline.
	MinutesPerDay = 24 * 60

	// EventDurationMinutes is the fixed slot length; appointments carry no
	// stored end time.
	EventDurationMinutes = 60

	// minHeightPercent keeps short events readable on the timeline.
	minHeightPercent = 4.17

	// maxVisibleMonthEvents caps the event summaries shown per month cell;
	// the remainder collapses into an overflow count.
	maxVisibleMonthEvents = 3

	// GridCells is the fixed 6x7 cell count of a month grid.
	GridCells = 42
)

// EventBox positions one appointment on the day/week timeline.
// TopPercent and HeightPercent are fractions of the 24-hour column.
type EventBox struct {
	TaskID        int64
	TopPercent    float64
	HeightPercent float64
	TimeLabel     string
	Title         string
	Subtitle      string
	Minute        int // minutes since midnight, for slot hit-testing
}

func newEventBox(t *task.Task, when time.Time) EventBox {
	minutes := when.Hour()*60 + when.Minute()
	height := float64(EventDurationMinutes) * 100 / MinutesPerDay
	if height < minHeightPercent {
		height = minHeightPercent
	}
	return EventBox{
		TaskID:        t.ID,
		TopPercent:    float64(minutes) * 100 / MinutesPerDay,
		HeightPercent: height,
		TimeLabel:     FormatClock(when),
		Title:         t.Title(),
		Subtitle:      t.Client,
		Minute:        minutes,
	}
}

// DayEvents projects the tasks scheduled on date onto timeline boxes,
// preserving input order.
func DayEvents(p *task.Parser, tasks []*task.Task, date time.Time) []EventBox {
	var boxes []EventBox
	for _, t := range FilterByDay(p, tasks, date) {
		when, _ := p.Parse(t)
		boxes = append(boxes, newEventBox(t, when))
	}
	return boxes
}

// WeekDay is one column of the week timeline.
type WeekDay struct {
	Date    time.Time
	IsToday bool
	Events  []EventBox
}

// WeekDays projects a week of tasks onto 7 timeline columns, bucketing the
// collection once instead of filtering it per day.
func WeekDays(p *task.Parser, tasks []*task.Task, pivot, today time.Time) [7]WeekDay {
	start, end := dateutil.WeekRange(pivot)
	buckets := BucketByDay(p, tasks, start, end)

	var days [7]WeekDay
	for i, date := range dateutil.WeekDates(start) {
		days[i] = WeekDay{Date: date, IsToday: dateutil.SameDay(date, today)}
		for _, t := range buckets[KeyOf(date)] {
			when, _ := p.Parse(t)
			days[i].Events = append(days[i].Events, newEventBox(t, when))
		}
	}
	return days
}

// EventSummary is the compact per-event line shown in month cells.
type EventSummary struct {
	TaskID    int64
	TimeLabel string
	Title     string
}

// MonthCell is one cell of the 6x7 month grid. Empty padding cells have
// Day == 0.
type MonthCell struct {
	Day      int
	Date     time.Time
	IsToday  bool
	Events   []EventSummary
	Overflow int
	Count    int
}

// MonthCells projects a month of tasks onto the fixed 42-cell grid, with
// leading and trailing empty cells aligning day 1 to its weekday. At most
// maxVisibleMonthEvents summaries are kept per cell; the rest is an
// overflow count.
func MonthCells(p *task.Parser, tasks []*task.Task, pivot, today time.Time) []MonthCell {
	first, last := dateutil.MonthBounds(pivot)
	buckets := BucketByDay(p, tasks, first, last)

	cells := make([]MonthCell, 0, GridCells)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, MonthCell{})
	}

	for day := 1; day <= last.Day(); day++ {
		date := time.Date(pivot.Year(), pivot.Month(), day, 0, 0, 0, 0, pivot.Location())
		cell := MonthCell{
			Day:     day,
			Date:    date,
			IsToday: dateutil.SameDay(date, today),
		}
		dayTasks := buckets[KeyOf(date)]
		cell.Count = len(dayTasks)
		for i, t := range dayTasks {
			if i == maxVisibleMonthEvents {
				cell.Overflow = len(dayTasks) - maxVisibleMonthEvents
				break
			}
			when, _ := p.Parse(t)
			cell.Events = append(cell.Events, EventSummary{
				TaskID:    t.ID,
				TimeLabel: FormatClock(when),
				Title:     t.Title(),
			})
		}
		cells = append(cells, cell)
	}

	for len(cells) < GridCells {
		cells = append(cells, MonthCell{})
	}
	return cells
}

// YearCell is one day cell of a year-view mini month. Empty padding cells
// have Day == 0.
type YearCell struct {
	Day     int
	Date    time.Time
	IsToday bool
	Count   int
}

// YearMonth is one mini month grid of the year view.
type YearMonth struct {
	Month time.Month
	Title string
	Cells []YearCell
}

// YearMonths projects a year of tasks onto 12 mini month grids with
// per-day appointment counts, bucketing the collection once.
func YearMonths(p *task.Parser, tasks []*task.Task, pivot, today time.Time) [12]YearMonth {
	start, end := dateutil.YearBounds(pivot)
	buckets := BucketByDay(p, tasks, start, end)

	var months [12]YearMonth
	for m := time.January; m <= time.December; m++ {
		first := time.Date(pivot.Year(), m, 1, 0, 0, 0, 0, pivot.Location())
		days := dateutil.DaysInMonth(first)

		ym := YearMonth{Month: m, Title: MonthShort(m)}
		ym.Cells = make([]YearCell, 0, GridCells)
		for i := 0; i < int(first.Weekday()); i++ {
			ym.Cells = append(ym.Cells, YearCell{})
		}
		for day := 1; day <= days; day++ {
			date := time.Date(pivot.Year(), m, day, 0, 0, 0, 0, pivot.Location())
			ym.Cells = append(ym.Cells, YearCell{
				Day:     day,
				Date:    date,
				IsToday: dateutil.SameDay(date, today),
				Count:   len(buckets[KeyOf(date)]),
			})
		}
		for len(ym.Cells) < GridCells {
			ym.Cells = append(ym.Cells, YearCell{})
		}
		months[m-1] = ym
	}
	return months
}

// CurrentTimePercent returns the vertical position of the current-time
// line on the day/week timeline.
func CurrentTimePercent(now time.Time) float64 {
	return float64(now.Hour()*60+now.Minute()) * 100 / MinutesPerDay
}

// SlotLabel renders the aria-style description of a creation slot,
// e.g. "09:30".
func SlotLabel(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
