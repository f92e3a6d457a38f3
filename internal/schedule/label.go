package schedule

import (
	"fmt"
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
)

// pt-BR calendar names, matching the booking UI.
var (
	monthNames = [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	weekdayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	weekdayInits = [7]string{"D", "S", "T", "Q", "Q", "S", "S"}
)

// MonthName returns the pt-BR name of a month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// MonthShort returns the three-letter pt-BR abbreviation of a month.
func MonthShort(m time.Month) string {
	return monthNames[int(m)-1][:3]
}

// WeekdayName returns the abbreviated pt-BR weekday name (Dom..Sáb).
func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)]
}

// WeekdayInitial returns the single-letter weekday header used by the
// year view (D S T Q Q S S).
func WeekdayInitial(d time.Weekday) string {
	return weekdayInits[int(d)]
}

// Label produces the header text for the current period:
// day:   "Sáb, 15 de Junho de 2024"
// week:  "9-15 de Junho 2024", or "30 Jun - 6 Jul 2024" across months
// month: "Junho 2024"
// year:  "2024"
func (s State) Label() string {
	switch s.View {
	case ViewDay:
		return fmt.Sprintf("%s, %d de %s de %d",
			WeekdayName(s.Pivot.Weekday()), s.Pivot.Day(), MonthName(s.Pivot.Month()), s.Pivot.Year())
	case ViewWeek:
		start, end := dateutil.WeekRange(s.Pivot)
		if start.Month() == end.Month() {
			return fmt.Sprintf("%d-%d de %s %d",
				start.Day(), end.Day(), MonthName(start.Month()), start.Year())
		}
		return fmt.Sprintf("%d %s - %d %s %d",
			start.Day(), MonthShort(start.Month()), end.Day(), MonthShort(end.Month()), start.Year())
	case ViewMonth:
		return fmt.Sprintf("%s %d", MonthName(s.Pivot.Month()), s.Pivot.Year())
	default:
		return fmt.Sprintf("%d", s.Pivot.Year())
	}
}

// FormatClock renders a time on the UI's 12-hour clock: "2 PM" on the hour,
// "2:30 PM" otherwise.
func FormatClock(t time.Time) string {
	hour := t.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d %s", display, period)
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), period)
}

// HourLabel renders an hour-of-day slot label on the 12-hour clock.
func HourLabel(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, period)
}
