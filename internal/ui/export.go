package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rafaelmartins/agendapet/internal/export"
	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format    string
		output    string
		search    string
		toClipped bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export appointments to CSV or iCalendar",
		Long: `Export all appointments as a CSV spreadsheet or an iCalendar feed.

CSV columns are Tutor, Pet, Contato, Tipo, Preço, Status Pagamento and
Horário. The iCalendar export only includes dated appointments.`,
		Example: `  agendapet export
  agendapet export --format=ics --output=agenda.ics
  agendapet export --clipboard`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			tasks, err := a.repo.ListTasks(context.Background())
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}
			tasks = schedule.FilterMatching(tasks, search)

			now := timeNow()
			var content, filename string
			switch format {
			case "csv":
				content = export.CSV(tasks)
				filename = export.CSVFilename(now)
			case "ics":
				parser := task.NewParser(task.HourOffset)
				content = export.ICS(parser, tasks, now)
				filename = export.ICSFilename(now)
			default:
				return fmt.Errorf("unknown format %q (want csv or ics)", format)
			}

			if toClipped {
				if err := clipboard.WriteAll(content); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("Copied %d appointments to clipboard.\n", len(tasks))
				return nil
			}

			if output != "" {
				filename = output
			}
			if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", filename, err)
			}
			fmt.Printf("Exported %d appointments to %s\n", len(tasks), filename)

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or ics")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default: agendamentos-YYYY-MM-DD.<format>)")
	cmd.Flags().StringVar(&search, "search", "", "Only export appointments matching this term")
	cmd.Flags().BoolVar(&toClipped, "clipboard", false, "Copy to the clipboard instead of writing a file")

	return cmd
}
