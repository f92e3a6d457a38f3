package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/summary"
	"github.com/rafaelmartins/agendapet/internal/task"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	base := m.renderApp()

	if m.mode == ModeModal && m.modalType != ModalNone {
		m.overlay.active = true
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
		return m.overlay.Render(base, m.width, m.height, m.renderModal())
	}

	return base
}

func (m Model) renderApp() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Carregando...")
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 1 {
		return "Terminal muito pequeno"
	}

	var body string
	switch m.state.View {
	case schedule.ViewDay:
		body = m.renderDay(bodyH)
	case schedule.ViewWeek:
		body = m.renderWeek(bodyH)
	case schedule.ViewMonth:
		body = m.renderMonth(bodyH)
	case schedule.ViewYear:
		body = m.renderYear(bodyH)
	}

	body = lipgloss.Place(m.width, bodyH, lipgloss.Left, lipgloss.Top, body)
	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return m.styles.AppStyle.Render(content)
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("Agendamentos")
	label := m.styles.HeaderStyle.Render(m.state.Label())
	view := m.styles.HelpStyle.Render("[" + string(m.state.View) + "]")

	line := title + "  " + label + "  " + view
	stats := m.renderStats()
	return lipgloss.JoinVertical(lipgloss.Left, line, stats)
}

// renderStats shows the period totals under the title.
func (m Model) renderStats() string {
	ps := summary.Summarize(m.parser, m.state, m.visibleTasks())
	text := fmt.Sprintf("%d agendamentos · R$ %.2f", ps.Count, ps.TotalValue)
	if ps.PendingValue > 0 {
		text += fmt.Sprintf(" · R$ %.2f pendente", ps.PendingValue)
	}
	if m.searchTerm != "" {
		text += fmt.Sprintf(" · filtro: %q", m.searchTerm)
	}
	return m.styles.StatsBarStyle.Render(text)
}

func (m Model) renderFooter() string {
	var lines []string

	if m.mode == ModeSearch {
		lines = append(lines, m.styles.SearchFocusedStyle.Render("/"+m.search.View()))
	}

	if m.statusMsg != "" {
		lines = append(lines, m.styles.StatusStyle.Render(m.statusMsg))
	}

	help := "h/l período · t hoje · 1-4 visão · j/k selecionar · enter editar · n novo · x excluir · / buscar · e/i/c exportar · q sair"
	lines = append(lines, m.styles.HelpStyle.Render(help))

	return strings.Join(lines, "\n")
}

// renderDay draws a single-day timeline between the configured opening hours.
func (m Model) renderDay(height int) string {
	events := schedule.DayEvents(m.parser, m.visibleTasks(), m.state.Pivot)

	startHour := m.config.DayStartHour()
	endHour := m.config.DayEndHour()

	// Row carrying the current-time marker when showing today.
	nowRow := -1
	if m.state.Pivot.Equal(schedule.Today(m.now())) {
		nowRow = int(schedule.CurrentTimePercent(m.now()) / 100 * 24)
	}

	var rows []string
	for hour := startHour; hour <= endHour; hour++ {
		label := m.styles.TimeColumnStyle.Width(8).Render(schedule.HourLabel(hour))

		marker := " "
		if hour == nowRow {
			now := m.now()
			marker = m.styles.CurrentTimeStyle.Render("▸"+schedule.SlotLabel(now.Hour(), now.Minute())) + " "
		}

		var blocks []string
		for i, ev := range events {
			if ev.Minute/60 != hour {
				continue
			}
			blocks = append(blocks, m.renderEventBlock(ev, i == m.selected))
		}

		row := label + marker + strings.Join(blocks, " ")
		rows = append(rows, row)
	}

	return clipRows(rows, height)
}

// renderWeek draws 7 day columns with hour rows.
func (m Model) renderWeek(height int) string {
	days := schedule.WeekDays(m.parser, m.visibleTasks(), m.state.Pivot, m.now())

	startHour := m.config.DayStartHour()
	endHour := m.config.DayEndHour()
	colW := (m.width - 9) / 7
	if colW < 8 {
		colW = 8
	}

	// Header row with weekday names and dates.
	header := strings.Repeat(" ", 9)
	for _, day := range days {
		label := fmt.Sprintf("%s %d", schedule.WeekdayName(day.Date.Weekday()), day.Date.Day())
		style := m.styles.DayHeaderStyle
		if day.IsToday {
			style = m.styles.DayHeaderTodayStyle
		}
		header += style.Width(colW).MaxWidth(colW).Render(label)
	}

	// Global selection index runs across the flattened day columns.
	offsets := [7]int{}
	idx := 0
	for i, day := range days {
		offsets[i] = idx
		idx += len(day.Events)
	}

	var rows []string
	for hour := startHour; hour <= endHour; hour++ {
		row := m.styles.TimeColumnStyle.Width(8).Render(schedule.HourLabel(hour)) + " "
		for i, day := range days {
			cell := ""
			for j, ev := range day.Events {
				if ev.Minute/60 != hour {
					continue
				}
				cell = m.renderEventCell(ev, colW, offsets[i]+j == m.selected)
				break
			}
			if cell == "" {
				cell = m.styles.EmptyCellStyle.Width(colW).Render("")
			}
			row += cell
		}
		rows = append(rows, row)
	}

	return header + "\n" + clipRows(rows, height-1)
}

// renderMonth draws the fixed 6x7 grid with up to 3 event summaries per cell.
func (m Model) renderMonth(height int) string {
	cells := schedule.MonthCells(m.parser, m.visibleTasks(), m.state.Pivot, m.now())

	colW := m.width / 7
	if colW < 10 {
		colW = 10
	}
	cellH := (height - 1) / 6
	if cellH < 2 {
		cellH = 2
	}

	header := ""
	for d := 0; d < 7; d++ {
		header += m.styles.DayHeaderStyle.Width(colW).Render(schedule.WeekdayInitial(weekdayAt(d)))
	}

	var weekRows []string
	for w := 0; w < 6; w++ {
		var cols []string
		for d := 0; d < 7; d++ {
			cols = append(cols, m.renderMonthCell(cells[w*7+d], colW, cellH))
		}
		weekRows = append(weekRows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	return header + "\n" + strings.Join(weekRows, "\n")
}

func (m Model) renderMonthCell(cell schedule.MonthCell, w, h int) string {
	if cell.Day == 0 {
		return m.styles.EmptyCellStyle.Width(w).Height(h).Render("")
	}

	dayStyle := m.styles.CellStyle
	if cell.IsToday {
		dayStyle = m.styles.CellTodayStyle
	}
	lines := []string{dayStyle.Render(fmt.Sprintf("%2d", cell.Day))}

	for _, ev := range cell.Events {
		if len(lines) >= h {
			break
		}
		lines = append(lines, truncate(ev.TimeLabel+" "+ev.Title, w))
	}
	if cell.Overflow > 0 && len(lines) < h {
		lines = append(lines, m.styles.CellOverflowStyle.Render(fmt.Sprintf("+%d mais", cell.Overflow)))
	}

	return m.styles.CellStyle.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

// renderYear draws 12 mini months in a 4x3 grid with per-month totals.
func (m Model) renderYear(height int) string {
	months := schedule.YearMonths(m.parser, m.visibleTasks(), m.state.Pivot, m.now())

	colW := m.width / 4
	if colW < 12 {
		colW = 12
	}

	var rows []string
	for r := 0; r < 3; r++ {
		var cols []string
		for c := 0; c < 4; c++ {
			cols = append(cols, m.renderYearMonth(months[r*4+c], colW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	return clipRows(rows, height)
}

func (m Model) renderYearMonth(ym schedule.YearMonth, w int) string {
	total := 0
	today := false
	for _, cell := range ym.Cells {
		total += cell.Count
		if cell.IsToday {
			today = true
		}
	}

	titleStyle := m.styles.CellStyle
	if today {
		titleStyle = m.styles.CellTodayStyle
	}

	lines := []string{titleStyle.Render(ym.Title)}
	if total > 0 {
		lines = append(lines, m.styles.StatsBarStyle.Render(fmt.Sprintf("%d agend.", total)))
	} else {
		lines = append(lines, m.styles.HelpStyle.Render("—"))
	}

	return m.styles.CellStyle.Width(w).Height(3).Render(strings.Join(lines, "\n"))
}

func (m Model) renderEventBlock(ev schedule.EventBox, selected bool) string {
	t := m.findTask(ev.TaskID)
	style := m.eventStyle(t, selected)
	text := fmt.Sprintf(" %s %s · %s ", ev.TimeLabel, ev.Title, ev.Subtitle)
	return style.Render(text)
}

func (m Model) renderEventCell(ev schedule.EventBox, w int, selected bool) string {
	t := m.findTask(ev.TaskID)
	style := m.eventStyle(t, selected)
	return style.Width(w).MaxWidth(w).Render(truncate(ev.TimeLabel+" "+ev.Title, w))
}

func (m Model) eventStyle(t *task.Task, selected bool) lipgloss.Style {
	paid := t != nil && t.PaymentStatus == task.PaymentPaid
	past := false
	if t != nil {
		if when, ok := m.parser.Parse(t); ok {
			past = when.Before(m.now())
		}
	}
	return m.styles.EventStyle(paid, past, selected)
}

// weekdayAt maps a Sunday-first column index to its weekday.
func weekdayAt(col int) time.Weekday {
	return time.Weekday(col % 7)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}

func clipRows(rows []string, height int) string {
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
