package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width < 40 {
		width = 80
	}
	innerWidth := width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("GG3 Network Toolkit"),
		versionStyle.Render(m.version),
	)

	var status, body, help string
	switch m.state {
	case stateInput:
		a := m.current()
		status = fmt.Sprintf("%s --%s <%s>", a.sub, a.opt, a.placeholder)
		body = m.input.View()
		help = "Enter: Run | Esc: Back | Ctrl+C: Quit"
	default:
		status = "Select an action (Up/Down, Enter)"
		body = m.table.View()
		help = "Enter: Choose | Up/Down: Move | Esc/q: Quit. The command runs in the terminal and the menu returns when you press ENTER."
	}
	if m.problem != "" {
		status = errorStyle.Render(m.problem)
	}

	return baseStyle.Width(width-2).Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			lipgloss.NewStyle().MarginBottom(1).PaddingLeft(1).Render(status),
			body,
			"",
			footerStyle.Width(innerWidth).Render(wrap.String(help, innerWidth-2)),
		),
	)
}
