package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gg3-devnet/gg3/pkg/model"
)

func press(t *testing.T, m MainModel, msgs ...tea.Msg) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MainModel)
	}
	return m, cmd
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestChooseDNSLookup(t *testing.T) {
	m, cmd := press(t, InitialModel("v0.2"),
		key(tea.KeyDown),
		key(tea.KeyEnter),
		typed("example.com"),
		key(tea.KeyEnter),
	)
	if cmd == nil {
		t.Fatal("expected a quit command after submitting")
	}
	got, ok := m.Selected()
	if !ok {
		t.Fatal("no command selected")
	}
	want := model.Command{Subcommand: model.SubcommandNetworking, Option: model.OptionDNS, Argument: "example.com"}
	if got != want {
		t.Errorf("Selected() = %+v, want %+v", got, want)
	}
}

func TestEmptyArgumentIsRejected(t *testing.T) {
	m, _ := press(t, InitialModel(""), key(tea.KeyEnter), key(tea.KeyEnter))
	if _, ok := m.Selected(); ok {
		t.Fatal("empty argument produced a command")
	}
	if m.state != stateInput || !strings.Contains(m.problem, "IP address") {
		t.Errorf("state=%v status=%q", m.state, m.problem)
	}
}

func TestOptionLikeArgumentIsRejected(t *testing.T) {
	m, _ := press(t, InitialModel(""), key(tea.KeyEnter), typed("--dns"), key(tea.KeyEnter))
	if _, ok := m.Selected(); ok {
		t.Fatal("argument starting with a dash produced a command")
	}
}

func TestEscReturnsToList(t *testing.T) {
	m, _ := press(t, InitialModel(""), key(tea.KeyEnter), typed("nginx"), key(tea.KeyEsc))
	if m.state != stateList || m.input.Value() != "" {
		t.Errorf("state=%v input=%q, want list state with a cleared input", m.state, m.input.Value())
	}
	if !m.table.Focused() {
		t.Error("table lost focus")
	}
}

func TestQuitWithoutSelection(t *testing.T) {
	m, cmd := press(t, InitialModel(""), typed("q"))
	if cmd == nil || !m.quitting {
		t.Fatal("q did not quit")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quit produced a command")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestViewListsActions(t *testing.T) {
	m, _ := press(t, InitialModel("v0.2"), tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"GG3 Network Toolkit", "--ping", "--nmap", "services"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}
