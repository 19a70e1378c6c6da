package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gg3-devnet/gg3/internal/shell"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state == stateInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.state = stateInput
		m.input.Placeholder = m.current().placeholder
		m.table.Blur()
		focus := m.input.Focus()
		return m, focus
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MainModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateList
		m.problem = ""
		m.input.Reset()
		m.input.Blur()
		m.table.Focus()
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	m.problem = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) current() action {
	return actions[m.table.Cursor()]
}

// submit validates the argument with the shell grammar and quits with the
// resulting command.
func (m MainModel) submit() (tea.Model, tea.Cmd) {
	a := m.current()
	value := strings.TrimSpace(m.input.Value())
	if value == "" || strings.ContainsAny(value, " \t") {
		m.problem = "Enter a single " + a.placeholder
		return m, nil
	}

	cmds, err := shell.ParseArgs(a.sub, []string{"--" + string(a.opt), value})
	if err != nil || len(cmds) != 1 {
		m.problem = "Invalid " + a.placeholder + ": " + value
		return m, nil
	}
	m.selected = &cmds[0]
	m.quitting = true
	return m, tea.Quit
}
