package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// formatPrice renders a value as Brazilian currency, e.g. "R$ 80,50".
func formatPrice(v float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// statusSymbol maps a payment status to a one-character marker.
func statusSymbol(s task.PaymentStatus) string {
	switch s {
	case task.PaymentPaid:
		return "✓"
	case task.PaymentPending:
		return "○"
	default:
		return "·"
	}
}

// formatStatus renders the payment marker in its status color.
func formatStatus(s task.PaymentStatus) string {
	switch s {
	case task.PaymentPaid:
		return formatPaid(statusSymbol(s))
	case task.PaymentPending:
		return formatPending(statusSymbol(s))
	default:
		return formatMuted(statusSymbol(s))
	}
}

// clampLine truncates a rendered line to the terminal width, keeping any
// embedded color sequences intact.
func clampLine(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// dayHeading renders a group heading like "Qua, 12/06/2024".
func dayHeading(day time.Time) string {
	return fmt.Sprintf("%s, %s", schedule.WeekdayName(day.Weekday()), day.Format("02/01/2006"))
}

// taskLine renders a single appointment line for list output.
func taskLine(t *task.Task, when time.Time, dated bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s #%d", formatStatus(t.PaymentStatus), t.ID)
	if dated {
		fmt.Fprintf(&b, " %s", when.Format("15:04"))
	}
	fmt.Fprintf(&b, " %s", t.Title())
	if t.PetName != "" && t.Client != "" {
		fmt.Fprintf(&b, " (%s)", t.Client)
	}
	if t.Type != "" {
		fmt.Fprintf(&b, " %s", formatMuted(t.Type))
	}
	if t.Price > 0 {
		fmt.Fprintf(&b, " %s", formatPrice(t.Price))
	}

	return b.String()
}
