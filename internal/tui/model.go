package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gg3-devnet/gg3/pkg/model"
)

// Menu colours follow the banner: red badge, green prompt, magenta values.
var (
	frameColor = lipgloss.Color("8")

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(frameColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3")).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(frameColor).
				Padding(0, 1)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(frameColor).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(frameColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type modelState int

const (
	stateList modelState = iota
	stateInput
)

type action struct {
	sub         model.Subcommand
	opt         model.Option
	placeholder string
	help        string
}

var actions = []action{
	{model.SubcommandNetworking, model.OptionPing, "IP address", "Ping a target IP"},
	{model.SubcommandNetworking, model.OptionDNS, "domain", "Check DNS resolution"},
	{model.SubcommandServices, model.OptionRestart, "service name", "Restart a system service"},
	{model.SubcommandServices, model.OptionStatus, "service name", "Check the status of a service"},
	{model.SubcommandSecurity, model.OptionNmap, "target", "Run a basic nmap scan"},
}

// MainModel is the command picker: a table of actions, then a prompt for
// the chosen action's argument.
type MainModel struct {
	state    modelState
	table    table.Model
	input    textinput.Model
	problem  string
	width    int
	quitting bool
	version  string

	selected *model.Command
}

func InitialModel(version string) MainModel {
	columns := []table.Column{
		{Title: "Command", Width: 12},
		{Title: "Option", Width: 10},
		{Title: "Argument", Width: 14},
		{Title: "Description", Width: 32},
	}
	rows := make([]table.Row, len(actions))
	for i, a := range actions {
		rows[i] = table.Row{string(a.sub), "--" + string(a.opt), "<" + a.placeholder + ">", a.help}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2), // header plus its bottom border
	)

	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	t.SetStyles(styles)

	// 253 is the longest DNS name.
	arg := textinput.New()
	arg.CharLimit = 253
	arg.Width = 50
	arg.Prompt = "> "
	arg.PromptStyle = promptStyle

	return MainModel{table: t, input: arg, version: version}
}

// Selected returns the command chosen before the program quit.
func (m MainModel) Selected() (model.Command, bool) {
	if m.selected == nil {
		return model.Command{}, false
	}
	return *m.selected, true
}

// Pick runs the menu until the user chooses a command or quits. ok is false
// when the user quit without choosing.
func Pick(version string, in io.Reader, out io.Writer) (cmd model.Command, ok bool, err error) {
	p := tea.NewProgram(InitialModel(version), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return model.Command{}, false, fmt.Errorf("error running menu: %w", err)
	}
	m, isMain := final.(MainModel)
	if !isMain {
		return model.Command{}, false, nil
	}
	cmd, ok = m.Selected()
	return cmd, ok, nil
}

func (m MainModel) Init() tea.Cmd {
	return nil
}
