package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()
	updated, _ := m.handleKeyMsg(keyMsg(key))
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	return next
}

func TestViewSwitchKeys(t *testing.T) {
	tests := []struct {
		key  string
		want schedule.View
	}{
		{"1", schedule.ViewDay},
		{"2", schedule.ViewWeek},
		{"3", schedule.ViewMonth},
		{"4", schedule.ViewYear},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m := pressKey(t, newTestModel(t), tc.key)
			if m.state.View != tc.want {
				t.Errorf("view = %v, want %v", m.state.View, tc.want)
			}
		})
	}
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel(t)
	pivot := m.state.Pivot

	m = pressKey(t, m, "l")
	if got := m.state.Pivot; !got.Equal(pivot.AddDate(0, 0, 7)) {
		t.Errorf("pivot after next = %v, want +7d", got)
	}

	m = pressKey(t, m, "h")
	if got := m.state.Pivot; !got.Equal(pivot) {
		t.Errorf("pivot after prev = %v, want original", got)
	}

	m = pressKey(t, m, "t")
	if !m.state.Pivot.Equal(schedule.Today(m.now())) {
		t.Errorf("pivot after today = %v", m.state.Pivot)
	}
}

func TestNewAppointmentKeyOpensForm(t *testing.T) {
	m := pressKey(t, newTestModel(t), "n")

	if m.mode != ModeModal || m.modalType != ModalTaskForm {
		t.Fatalf("mode=%v modal=%v, want task form modal", m.mode, m.modalType)
	}
	if m.modalTask != nil {
		t.Error("expected a creation form, not an edit")
	}
	if got, want := m.form[fieldDeadline].Value(), "12/06/2024 08:00"; got != want {
		t.Errorf("deadline field = %q, want slot at opening time %q", got, want)
	}

	m = pressKey(t, m, "esc")
	if m.mode != ModeNormal || m.modalType != ModalNone {
		t.Error("esc should close the modal")
	}
}

func TestEnterOpensEditFormForSelectedEvent(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 7, Client: "Ana", PetName: "Rex", Deadline: "12/06/2024 14:00"},
	}

	m = pressKey(t, m, "enter")
	if m.mode != ModeModal || m.modalType != ModalTaskForm {
		t.Fatalf("mode=%v modal=%v, want task form modal", m.mode, m.modalType)
	}
	if m.modalTask == nil || m.modalTask.ID != 7 {
		t.Fatalf("modalTask = %+v, want task 7", m.modalTask)
	}
	if m.form[fieldClient].Value() != "Ana" {
		t.Errorf("client field = %q, want Ana", m.form[fieldClient].Value())
	}
	if m.form[fieldDeadline].Value() != "12/06/2024 14:00" {
		t.Errorf("deadline field = %q", m.form[fieldDeadline].Value())
	}
}

func TestEnterWithNoEventsIsNoop(t *testing.T) {
	m := pressKey(t, newTestModel(t), "enter")
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
}

func TestSelectionCycles(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 1, Client: "Ana", Deadline: "10/06/2024 09:00"},
		{ID: 2, Client: "Bruno", Deadline: "12/06/2024 14:00"},
	}

	m = pressKey(t, m, "j")
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
	m = pressKey(t, m, "j")
	if m.selected != 0 {
		t.Errorf("selected wrapped = %d, want 0", m.selected)
	}
	m = pressKey(t, m, "k")
	if m.selected != 1 {
		t.Errorf("selected after k = %d, want 1", m.selected)
	}
}

func TestSearchMode(t *testing.T) {
	m := pressKey(t, newTestModel(t), "/")
	if m.mode != ModeSearch {
		t.Fatalf("mode = %v, want search", m.mode)
	}

	m = pressKey(t, m, "r")
	m = pressKey(t, m, "e")
	m = pressKey(t, m, "x")
	m = pressKey(t, m, "enter")

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal after enter", m.mode)
	}
	if m.searchTerm != "rex" {
		t.Errorf("searchTerm = %q, want rex", m.searchTerm)
	}

	m = pressKey(t, m, "/")
	m = pressKey(t, m, "esc")
	if m.searchTerm != "" {
		t.Errorf("searchTerm = %q, want cleared after esc", m.searchTerm)
	}
}

func TestDeleteKeyOpensConfirm(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []*task.Task{
		{ID: 3, Client: "Ana", Deadline: "12/06/2024 14:00"},
	}

	m = pressKey(t, m, "x")
	if m.modalType != ModalConfirmDelete {
		t.Fatalf("modal = %v, want confirm delete", m.modalType)
	}
	if m.deleteTask == nil || m.deleteTask.ID != 3 {
		t.Fatalf("deleteTask = %+v, want task 3", m.deleteTask)
	}

	m = pressKey(t, m, "n")
	if m.modalType != ModalNone || m.deleteTask != nil {
		t.Error("n should cancel the delete")
	}
}

func TestFormSubmitValidation(t *testing.T) {
	m := pressKey(t, newTestModel(t), "n")
	m.form[fieldClient].SetValue("")
	m.form[fieldDeadline].SetValue("")

	updated, cmd := m.submitForm()
	m = updated.(Model)
	if cmd != nil {
		t.Fatal("expected no save command on validation failure")
	}
	if m.formError == "" {
		t.Error("expected a form error for missing client")
	}
	if m.modalType != ModalTaskForm {
		t.Error("form should stay open on validation failure")
	}
}

func TestFormSubmitCreatesTask(t *testing.T) {
	m := pressKey(t, newTestModel(t), "n")
	m.form[fieldClient].SetValue("Maria")
	m.form[fieldPet].SetValue("Rex")
	m.form[fieldPrice].SetValue("80,50")
	m.form[fieldDeadline].SetValue("15/06/2024 14:30")

	updated, cmd := m.submitForm()
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if m.modalType != ModalNone {
		t.Error("form should close on submit")
	}
}

func TestPaymentToggle(t *testing.T) {
	m := pressKey(t, newTestModel(t), "n")
	m.formFocus = formPaymentFocus

	m = pressKey(t, m, "right")
	if paymentOptions[m.formPayment] != task.PaymentPending {
		t.Errorf("payment = %q, want pendente", paymentOptions[m.formPayment])
	}
	m = pressKey(t, m, "right")
	if paymentOptions[m.formPayment] != task.PaymentPaid {
		t.Errorf("payment = %q, want pago", paymentOptions[m.formPayment])
	}
	m = pressKey(t, m, "left")
	if paymentOptions[m.formPayment] != task.PaymentPending {
		t.Errorf("payment = %q, want pendente after left", paymentOptions[m.formPayment])
	}
}
