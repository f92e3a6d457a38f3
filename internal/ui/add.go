package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelmartins/agendapet/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		pet      string
		contact  string
		svcType  string
		price    string
		payment  string
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "add [tutor]",
		Short: "Add a new appointment",
		Long: `Add a new appointment for a tutor.

Example:
  agendapet add "Maria Silva" --pet=Rex --type=banho --price=80.50 --deadline="15/03/2025 14:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := task.New(args[0], pet, contact, svcType, price, payment, deadline)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating appointment: %w", err)
			}

			fmt.Printf("Created appointment #%d: %s", t.ID, t.Title())
			if t.HasDeadline() {
				fmt.Printf(" — %s", t.Deadline)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&pet, "pet", "", "Pet name")
	cmd.Flags().StringVar(&contact, "contact", "", "Tutor contact (phone or email)")
	cmd.Flags().StringVar(&svcType, "type", "", "Service type (banho, tosa, consulta, ...)")
	cmd.Flags().StringVar(&price, "price", "", "Price in reais, e.g. 80.50")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment status: pago or pendente")
	cmd.Flags().StringVar(&deadline, "deadline", "", `Scheduled time ("DD/MM/YYYY HH:mm", default: none)`)

	return cmd
}
