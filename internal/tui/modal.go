package tui

import (
	"fmt"
	"strings"
)

var formLabels = [formFieldCount]string{
	fieldClient:   "Tutor",
	fieldPet:      "Pet",
	fieldContact:  "Contato",
	fieldType:     "Tipo",
	fieldPrice:    "Preço",
	fieldDeadline: "Horário",
}

var paymentLabels = []string{"—", "pendente", "pago"}

// renderModal renders the active modal's content.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalTaskForm:
		return m.renderTaskForm()
	case ModalConfirmDelete:
		return m.renderConfirmDelete()
	}
	return ""
}

func (m Model) renderTaskForm() string {
	title := "Novo agendamento"
	if m.modalTask != nil {
		title = "Editar agendamento"
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.form {
		label := formLabels[i]
		if i == m.formFocus {
			label = "▸ " + label
		} else {
			label = "  " + label
		}
		b.WriteString(m.styles.ModalLabelStyle.Width(12).Render(label))
		b.WriteString(m.form[i].View())
		b.WriteString("\n")
	}

	// Payment toggle
	paymentLabel := "  Pagamento"
	if m.formFocus == formPaymentFocus {
		paymentLabel = "▸ Pagamento"
	}
	b.WriteString(m.styles.ModalLabelStyle.Width(12).Render(paymentLabel))
	for i, label := range paymentLabels {
		style := m.styles.ModalButtonStyle
		if i == m.formPayment {
			style = m.styles.ModalButtonActiveStyle
		}
		b.WriteString(style.Render(label))
	}
	b.WriteString("\n\n")

	saveStyle := m.styles.ModalButtonStyle
	if m.formFocus == formSubmitFocus {
		saveStyle = m.styles.ModalButtonActiveStyle
	}
	b.WriteString(m.styles.ModalLabelStyle.Width(12).Render(""))
	b.WriteString(saveStyle.Render("Salvar"))
	b.WriteString("\n")

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ModalWarningStyle.Render(m.formError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("tab campo · ←/→ pagamento · ctrl+s salvar · esc cancelar"))

	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderConfirmDelete() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Excluir agendamento"))
	b.WriteString("\n\n")
	if m.deleteTask != nil {
		b.WriteString(fmt.Sprintf("%s · %s\n\n", m.deleteTask.Title(), m.deleteTask.Client))
	}
	b.WriteString(m.styles.ModalWarningStyle.Render("Esta ação não pode ser desfeita."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalHintStyle.Render("y confirmar · n cancelar"))
	return m.styles.ModalStyle.Render(b.String())
}
