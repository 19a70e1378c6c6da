package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gg3-devnet/gg3/internal/style"
	"github.com/muesli/reflow/indent"
)

const Version = "0.2"

// Banner renders the double-bordered title box.
func Banner(pal style.Palette) string {
	title := pal.Render(style.RoleBadge, "GG3") + " " +
		pal.Render(style.RoleHeading, "Network Toolkit ") +
		pal.Render(style.RoleAccent, "v") +
		pal.Render(style.RoleValue, Version)

	box := pal.Renderer().NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(0, 9)

	return "\n" + box.Render(title) + "\n"
}

type menuEntry struct {
	usage string
	help  string
}

type menuSection struct {
	name    string
	entries []menuEntry
}

var menuSections = []menuSection{
	{"networking", []menuEntry{
		{"networking --ping <IP>", "Ping a target IP"},
		{"networking --dns <domain>", "Check DNS resolution"},
	}},
	{"services", []menuEntry{
		{"services --restart <service>", "Restart a system service"},
		{"services --status <service>", "Check the status of a service"},
	}},
	{"security", []menuEntry{
		{"security --nmap <target>", "Run a basic nmap scan"},
	}},
}

// Menu renders the list of available commands.
func Menu(pal style.Palette) string {
	var b strings.Builder
	b.WriteString("\nAvailable Commands:\n\n")

	for _, sec := range menuSections {
		b.WriteString(pal.Tag(sec.name, style.RoleAccent) + "\n")
		var body strings.Builder
		for _, e := range sec.entries {
			fmt.Fprintf(&body, "%-32s %s\n", e.usage, e.help)
		}
		b.WriteString(indent.String(body.String(), 2))
		b.WriteString("\n")
	}

	b.WriteString("Special Commands:\n")
	b.WriteString(indent.String(fmt.Sprintf("%-17s %s\n%-17s %s\n",
		"exit, quit", "Exit the program",
		"help, menu", "Show this menu",
	), 2))
	return b.String()
}
