package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafaelmartins/agendapet/internal/dateutil"
	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		viewName string
		date     string
		from     string
		to       string
		search   string
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments for a period",
		Long: `List appointments grouped by day.

The period is a day, week, month or year around the given date, or an
explicit --from/--to date range. If no date is specified, the period
around today is used.`,
		Example: `  agendapet list
  agendapet list --view=day --date=2025-03-15
  agendapet list --from=2025-03-01 --to=2025-03-15
  agendapet list --view=month --search=rex`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if plain {
				DisableColor()
			}

			label, start, end, err := listBounds(viewName, date, from, to)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			tasks, err := a.repo.ListTasks(context.Background())
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}
			tasks = schedule.FilterMatching(tasks, search)

			printPeriod(label, start, end, tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "week", "Period: day, week, month or year")
	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, overrides --view/--date)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, defaults to --from)")
	cmd.Flags().StringVar(&search, "search", "", "Only show appointments matching this term")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable color output")

	return cmd
}

// resolveState builds the schedule state for a view name and an
// optional reference date.
func resolveState(viewName, date string) (schedule.State, error) {
	view, err := schedule.ParseView(viewName)
	if err != nil {
		return schedule.State{}, err
	}

	pivot := timeNow()
	if date != "" {
		pivot, err = dateutil.ParseDate(date)
		if err != nil {
			return schedule.State{}, err
		}
	}
	return schedule.NewState(pivot, view), nil
}

// listBounds resolves the listing window. An explicit --from/--to range
// wins over the view period around --date.
func listBounds(viewName, date, from, to string) (string, time.Time, time.Time, error) {
	if from != "" || to != "" {
		dr, err := dateutil.NewDateRange(from, to)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		label := dr.Start.Format("02/01/2006")
		if !dateutil.SameDay(dr.Start, dr.End) {
			label += " - " + dr.End.Format("02/01/2006")
		}
		return label, dr.Start, dr.End, nil
	}

	state, err := resolveState(viewName, date)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	start, end := state.Range()
	return state.Label(), start, end, nil
}

// printPeriod writes appointments grouped by day, followed by the tasks
// with no resolvable date. Lines are clamped to the terminal width.
func printPeriod(label string, start, end time.Time, tasks []*task.Task) {
	parser := task.NewParser(task.HourOffset)
	width := termWidth()

	buckets := schedule.BucketByDay(parser, tasks, start, end)
	if len(buckets) == 0 {
		fmt.Printf("No appointments for %s.\n", label)
		return
	}

	keys := make([]schedule.DateKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Time().Before(keys[j].Time())
	})

	fmt.Println(formatHeader(label))
	for _, k := range keys {
		fmt.Printf("\n=== %s ===\n", dayHeading(k.Time()))
		for _, t := range buckets[k] {
			when, ok := parser.Parse(t)
			fmt.Println(clampLine(taskLine(t, when, ok), width))
		}
	}

	undated := undatedTasks(parser, tasks)
	if len(undated) > 0 {
		fmt.Printf("\n=== %s ===\n", task.DeadlineUndefined)
		for _, t := range undated {
			fmt.Println(clampLine(taskLine(t, timeNow(), false), width))
		}
	}
}

func undatedTasks(p *task.Parser, tasks []*task.Task) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		if _, ok := p.Parse(t); !ok {
			out = append(out, t)
		}
	}
	return out
}
