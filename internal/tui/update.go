package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelmartins/agendapet/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.parser.Reset()
		m.loading = false
		m.clampSelection()
		return m, nil

	case commands.TaskSavedMsg:
		if msg.Created {
			m.statusMsg = fmt.Sprintf("Agendamento criado: %s", msg.Task.Title())
		} else {
			m.statusMsg = fmt.Sprintf("Agendamento atualizado: %s", msg.Task.Title())
		}
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Batch(commands.LoadTasks(m.repo), clearStatusAfter(3*time.Second))

	case commands.TaskDeletedMsg:
		m.statusMsg = "Agendamento removido"
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Batch(commands.LoadTasks(m.repo), clearStatusAfter(3*time.Second))

	case commands.ExportDoneMsg:
		m.statusMsg = fmt.Sprintf("Exportado para %s", msg.Filename)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.CopiedMsg:
		m.statusMsg = "CSV copiado para a área de transferência"
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Erro: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
