package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/rafaelmartins/agendapet/internal/task"
)

// eventDuration matches the fixed appointment length used by the calendar
// views; appointments carry no stored end time.
const eventDuration = 60 * time.Minute

// ICS renders dated appointments as a VCALENDAR with one 60-minute VEVENT
// each. Appointments whose deadline cannot be resolved are skipped.
func ICS(p *task.Parser, tasks []*task.Task, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//agendapet//agendapet//PT-BR")

	for _, t := range tasks {
		when, ok := p.Parse(t)
		if !ok {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("agendamento-%d@agendapet", t.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(when)
		ev.SetEndAt(when.Add(eventDuration))
		ev.SetSummary(eventSummary(t))
		ev.SetDescription(eventDescription(t))
	}

	return cal.Serialize()
}

func eventSummary(t *task.Task) string {
	if t.Type != "" {
		return fmt.Sprintf("%s - %s", t.Title(), t.Type)
	}
	return t.Title()
}

func eventDescription(t *task.Task) string {
	return fmt.Sprintf("Tutor: %s\nContato: %s\nStatus: %s", t.Client, t.Contact, t.PaymentStatus)
}

// ICSFilename returns the download name for an export taken at the given time.
func ICSFilename(now time.Time) string {
	return "agendamentos-" + now.Format("2006-01-02") + ".ics"
}
