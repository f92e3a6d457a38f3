// Package summary provides shared period summary utilities.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// PeriodSummary holds aggregated appointment data for a visible period.
type PeriodSummary struct {
	Start        time.Time
	End          time.Time
	Label        string
	Tasks        []*task.Task
	Count        int
	TotalValue   float64
	PaidValue    float64
	PendingValue float64
	Undated      int
}

// Summarize builds summary data for the period the state is showing.
// Tasks whose deadline cannot be resolved to a date are counted as
// undated and excluded from the period totals.
func Summarize(p *task.Parser, s schedule.State, tasks []*task.Task) *PeriodSummary {
	start, end := s.Range()
	ps := &PeriodSummary{
		Start: start,
		End:   end,
		Label: s.Label(),
	}

	lo := dateutil.TruncateToDay(start)
	hi := dateutil.TruncateToDay(end)
	for _, t := range tasks {
		when, ok := p.Parse(t)
		if !ok {
			ps.Undated++
			continue
		}
		day := dateutil.TruncateToDay(when)
		if day.Before(lo) || day.After(hi) {
			continue
		}
		ps.Tasks = append(ps.Tasks, t)
		ps.Count++
		ps.TotalValue += t.Price
		switch t.PaymentStatus {
		case task.PaymentPaid:
			ps.PaidValue += t.Price
		case task.PaymentPending:
			ps.PendingValue += t.Price
		}
	}

	return ps
}

// Build loads all appointments and summarizes the period the state is showing.
func Build(ctx context.Context, repo task.Repository, p *task.Parser, s schedule.State) (*PeriodSummary, error) {
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching appointments: %w", err)
	}
	return Summarize(p, s, tasks), nil
}
