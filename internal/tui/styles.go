// Package tui provides the terminal user interface for agendapet.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelmartins/agendapet/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg     lipgloss.Color
	colorFg     lipgloss.Color
	colorAccent lipgloss.Color

	// Title and header
	TitleStyle          lipgloss.Style
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle  lipgloss.Style
	CurrentTimeStyle lipgloss.Style

	// Event block styles
	EventPaidStyle        lipgloss.Style
	EventPendingStyle     lipgloss.Style
	EventPastPaidStyle    lipgloss.Style
	EventPastPendingStyle lipgloss.Style
	EventSelectedStyle    lipgloss.Style

	// Month/year grid
	CellStyle         lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellOverflowStyle lipgloss.Style
	EmptyCellStyle    lipgloss.Style

	// Stats bar
	StatsBarStyle lipgloss.Style

	// Status message and help
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Search prompt
	SearchStyle        lipgloss.Style
	SearchFocusedStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBackdropColor     lipgloss.Color
	ModalTitleStyle        lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalWarningStyle      lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		palette:     p,
		colorBg:     p.Bg,
		colorFg:     p.Fg,
		colorAccent: p.Accent,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg).
		Bold(true)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Align(lipgloss.Center)

	s.DayHeaderTodayStyle = lipgloss.NewStyle().
		Foreground(p.TextOnCurrent).
		Background(p.Current).
		Bold(true).
		Align(lipgloss.Center)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Align(lipgloss.Right)

	s.CurrentTimeStyle = lipgloss.NewStyle().
		Foreground(p.Current).
		Background(p.Bg).
		Bold(true)

	s.EventPaidStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.PaidBg)

	s.EventPendingStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.PendingBg)

	s.EventPastPaidStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.PaidPastBg)

	s.EventPastPendingStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.PendingPastBg)

	s.EventSelectedStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Bold(true)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	s.CellTodayStyle = lipgloss.NewStyle().
		Foreground(p.TextOnCurrent).
		Background(p.Current).
		Bold(true)

	s.CellOverflowStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Italic(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.SearchStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.SearchFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgHighlight)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Modal.Border).
		BorderBackground(p.Modal.Bg).
		Background(p.Modal.Bg).
		Foreground(p.Modal.Text).
		Padding(1, 2)

	s.ModalBackdropColor = p.Modal.Backdrop

	s.ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Modal.Bg).
		Bold(true)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Text).
		Background(p.Modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Modal.Bg)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg).
		Italic(true)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Modal.Bg).
		Bold(true)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg).
		Padding(0, 1)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(p.Bg)

	return s
}

// EventStyle picks the block style for an appointment given its payment
// state and whether it is in the past.
func (s *Styles) EventStyle(paid, past, selected bool) lipgloss.Style {
	if selected {
		return s.EventSelectedStyle
	}
	switch {
	case past && paid:
		return s.EventPastPaidStyle
	case past:
		return s.EventPastPendingStyle
	case paid:
		return s.EventPaidStyle
	default:
		return s.EventPendingStyle
	}
}
