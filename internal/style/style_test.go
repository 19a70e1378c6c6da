package style

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gg3-devnet/gg3/pkg/model"
	"github.com/muesli/termenv"
)

func TestLevelColors(t *testing.T) {
	p := New(NewRenderer(&bytes.Buffer{}, false))

	tests := []struct {
		level model.Level
		want  lipgloss.TerminalColor
	}{
		{model.LevelInfo, white},
		{model.LevelWarning, yellow},
		{model.LevelError, red},
		{model.LevelDebug, blue},
		{model.Level("TRACE"), white},
		{model.Level(""), white},
	}
	for _, tt := range tests {
		if got := p.Level(tt.level).GetForeground(); got != tt.want {
			t.Errorf("Level(%q) foreground = %v, want %v", tt.level, got, tt.want)
		}
	}

	if got := p.Level(model.LevelCritical).GetBackground(); got != red {
		t.Errorf("CRITICAL background = %v, want %v", got, red)
	}
	if !p.Level(model.LevelDev).GetBold() {
		t.Error("DEV level should be bold")
	}
}

func TestTagPlainWhenNotATerminal(t *testing.T) {
	p := New(NewRenderer(&bytes.Buffer{}, false))
	if got := p.Tag("NETWORKING", RoleText); got != "[NETWORKING]" {
		t.Errorf("Tag() = %q, want %q", got, "[NETWORKING]")
	}
}

func TestNoColorForcesAscii(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, true)
	if r.ColorProfile() != termenv.Ascii {
		t.Errorf("ColorProfile() = %v, want Ascii", r.ColorProfile())
	}
}
