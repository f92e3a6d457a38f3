package tui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
	"github.com/rafaelmartins/agendapet/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Period navigation
	case "h", "left":
		return m.dispatch(schedule.NavigatePrev{}, "prev")
	case "l", "right":
		return m.dispatch(schedule.NavigateNext{}, "next")
	case "t":
		return m.dispatch(schedule.JumpToday{}, "today")

	// View switching
	case "1", "D":
		return m.dispatch(schedule.SetView{View: schedule.ViewDay}, "view day")
	case "2", "W":
		return m.dispatch(schedule.SetView{View: schedule.ViewWeek}, "view week")
	case "3", "M":
		return m.dispatch(schedule.SetView{View: schedule.ViewMonth}, "view month")
	case "4", "Y":
		return m.dispatch(schedule.SetView{View: schedule.ViewYear}, "view year")

	// Event selection
	case "j", "down", "tab":
		if n := len(m.periodEvents()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil
	case "k", "up", "shift+tab":
		if n := len(m.periodEvents()); n > 0 {
			m.selected = (m.selected + n - 1) % n
		}
		return m, nil

	case "enter":
		events := m.periodEvents()
		if m.selected < len(events) {
			return m.dispatch(schedule.ActivateTask{ID: events[m.selected].TaskID}, "edit")
		}
		return m, nil

	case "n":
		// Day and week views pre-fill a concrete slot at opening time;
		// month and year cells draft the whole day.
		switch m.state.View {
		case schedule.ViewDay:
			return m.dispatch(schedule.ActivateSlot{Day: -1, Hour: m.config.DayStartHour()}, "new slot")
		case schedule.ViewWeek:
			col := int(m.state.Pivot.Weekday())
			return m.dispatch(schedule.ActivateSlot{Day: col, Hour: m.config.DayStartHour()}, "new slot")
		default:
			return m.dispatch(schedule.ActivateCell{Date: m.state.Pivot}, "new")
		}

	case "x", "delete":
		events := m.periodEvents()
		if m.selected < len(events) {
			if t := m.findTask(events[m.selected].TaskID); t != nil {
				m.deleteTask = t
				m.mode = ModeModal
				m.modalType = ModalConfirmDelete
				LogModeChange(ModeNormal, ModeModal, "confirm delete")
			}
		}
		return m, nil

	case "/":
		m.mode = ModeSearch
		m.search.SetValue(m.searchTerm)
		m.search.Focus()
		LogModeChange(ModeNormal, ModeSearch, "search")
		return m, nil

	// Export
	case "e":
		return m, commands.ExportCSV(m.visibleTasks())
	case "i":
		return m, commands.ExportICS(m.parser, m.visibleTasks())
	case "c":
		return m, commands.CopyCSV(m.visibleTasks())
	}

	return m, nil
}

// dispatch runs a calendar interaction event and reacts to its action.
func (m Model) dispatch(ev schedule.Event, reason string) (tea.Model, tea.Cmd) {
	deps := schedule.Deps{FindTask: m.findTask, Now: m.now}
	next, action := schedule.Apply(m.state, ev, deps)
	if next != m.state {
		m.state = next
		m.selected = 0
		LogNavigation(m.state, reason)
	}

	switch action.Kind {
	case schedule.ActionEdit:
		m.openTaskForm(action.Task, schedule.Draft{})
	case schedule.ActionCreate:
		m.openTaskForm(nil, action.Draft)
	}
	return m, nil
}

// openTaskForm opens the booking modal for an existing appointment or a
// pre-filled draft.
func (m *Model) openTaskForm(t *task.Task, draft schedule.Draft) {
	m.modalTask = t
	m.draft = draft
	m.formError = ""
	m.formFocus = fieldClient
	m.formPayment = 0

	for i := range m.form {
		m.form[i].SetValue("")
		m.form[i].Blur()
	}

	if t != nil {
		m.form[fieldClient].SetValue(t.Client)
		m.form[fieldPet].SetValue(t.PetName)
		m.form[fieldContact].SetValue(t.Contact)
		m.form[fieldType].SetValue(t.Type)
		if t.Price != 0 {
			m.form[fieldPrice].SetValue(strconv.FormatFloat(t.Price, 'f', -1, 64))
		}
		if t.Deadline != task.DeadlineUndefined {
			m.form[fieldDeadline].SetValue(t.Deadline)
		}
		for i, opt := range paymentOptions {
			if t.PaymentStatus == opt {
				m.formPayment = i
			}
		}
	} else if draft.Deadline != "" {
		m.form[fieldDeadline].SetValue(draft.Deadline)
	}

	m.form[fieldClient].Focus()
	m.mode = ModeModal
	m.modalType = ModalTaskForm
	LogModeChange(ModeNormal, ModeModal, "task form")
}

// handleSearchKeys handles keys while the search prompt is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.search.Blur()
		m.search.SetValue("")
		m.searchTerm = ""
		m.clampSelection()
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.search.Blur()
		m.searchTerm = strings.TrimSpace(m.search.Value())
		m.selected = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.searchTerm = strings.TrimSpace(m.search.Value())
	return m, cmd
}

// handleModalKeys routes keys to the active modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalTaskForm:
		return m.handleTaskFormKeys(msg)
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.deleteTask.ID
		m.closeModal()
		return m, commands.DeleteTask(m.repo, id)
	case "n", "esc":
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m Model) handleTaskFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.moveFormFocus(+1)
		return m, nil
	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return m, nil

	case "left":
		if m.formFocus == formPaymentFocus {
			m.formPayment = (m.formPayment + len(paymentOptions) - 1) % len(paymentOptions)
			return m, nil
		}
	case "right":
		if m.formFocus == formPaymentFocus {
			m.formPayment = (m.formPayment + 1) % len(paymentOptions)
			return m, nil
		}

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		if m.formFocus >= formPaymentFocus {
			return m.submitForm()
		}
		m.moveFormFocus(+1)
		return m, nil
	}

	if m.formFocus < formFieldCount {
		var cmd tea.Cmd
		m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveFormFocus(delta int) {
	if m.formFocus < formFieldCount {
		m.form[m.formFocus].Blur()
	}
	m.formFocus += delta
	if m.formFocus < 0 {
		m.formFocus = formSubmitFocus
	}
	if m.formFocus > formSubmitFocus {
		m.formFocus = 0
	}
	if m.formFocus < formFieldCount {
		m.form[m.formFocus].Focus()
	}
}

// submitForm validates the booking form and issues the save command.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	client := strings.TrimSpace(m.form[fieldClient].Value())
	petName := strings.TrimSpace(m.form[fieldPet].Value())
	contact := strings.TrimSpace(m.form[fieldContact].Value())
	svcType := strings.TrimSpace(m.form[fieldType].Value())
	price := strings.ReplaceAll(strings.TrimSpace(m.form[fieldPrice].Value()), ",", ".")
	deadline := strings.TrimSpace(m.form[fieldDeadline].Value())
	payment := string(paymentOptions[m.formPayment])

	t, err := task.New(client, petName, contact, svcType, price, payment, deadline)
	if err != nil {
		m.formError = formErrorMessage(err)
		return m, nil
	}

	if m.modalTask != nil {
		t.ID = m.modalTask.ID
		t.CreatedAt = m.modalTask.CreatedAt
		// Deadline text untouched: the stored timestamp stays authoritative.
		if deadline == m.modalTask.Deadline {
			t.DeadlineTimestamp = m.modalTask.DeadlineTimestamp
		}
	}

	m.closeModal()
	return m, commands.SaveTask(m.repo, t)
}

func formErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrEmptyClient):
		return "Informe o nome do tutor"
	case errors.Is(err, task.ErrNegativePrice):
		return "Preço inválido"
	case errors.Is(err, task.ErrInvalidDeadline):
		return "Horário inválido, use DD/MM/AAAA HH:mm"
	case errors.Is(err, task.ErrInvalidPaymentInfo):
		return "Status de pagamento inválido"
	default:
		return err.Error()
	}
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.modalTask = nil
	m.deleteTask = nil
	m.draft = schedule.Draft{}
	m.formError = ""
	if m.formFocus < formFieldCount {
		m.form[m.formFocus].Blur()
	}
	LogModeChange(ModeModal, ModeNormal, "close modal")
}
