package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelmartins/agendapet/internal/summary"
	"github.com/rafaelmartins/agendapet/internal/task"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		viewName string
		date     string
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show appointment totals for a period",
		Example: `  agendapet summary
  agendapet summary --view=month --date=2025-03-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if plain {
				DisableColor()
			}

			state, err := resolveState(viewName, date)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			parser := task.NewParser(task.HourOffset)
			sum, err := summary.Build(context.Background(), a.repo, parser, state)
			if err != nil {
				return err
			}

			fmt.Println(formatHeader(sum.Label))
			fmt.Printf("  Agendamentos: %s\n", formatStats(fmt.Sprintf("%d", sum.Count)))
			fmt.Printf("  Total:        %s\n", formatStats(formatPrice(sum.TotalValue)))
			fmt.Printf("  Pago:         %s\n", formatPaid(formatPrice(sum.PaidValue)))
			fmt.Printf("  Pendente:     %s\n", formatPending(formatPrice(sum.PendingValue)))
			if sum.Undated > 0 {
				fmt.Printf("  %s\n", formatMuted(fmt.Sprintf("%d sem prazo definido", sum.Undated)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "week", "Period: day, week, month or year")
	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable color output")

	return cmd
}
