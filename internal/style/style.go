// Package style holds the toolkit's colour table. A Palette is built once per
// output stream and never mutated afterwards.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gg3-devnet/gg3/pkg/model"
	"github.com/muesli/termenv"
)

type Role int

const (
	RoleText    Role = iota
	RoleBracket      // tag brackets
	RoleAccent       // action verbs, prompts
	RoleValue        // user-supplied targets, addresses, timestamps
	RoleAlert        // errors
	RoleNotice       // exit and acknowledgement hints
	RoleBadge        // "GG3" block in the banner
	RoleHeading      // banner title, section names
)

var (
	white   = lipgloss.Color("7")
	black   = lipgloss.Color("0")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
)

type Palette struct {
	renderer *lipgloss.Renderer
	levels   map[model.Level]lipgloss.Style
	roles    map[Role]lipgloss.Style
	fallback lipgloss.Style
}

// NewRenderer returns a renderer for w. Colour is dropped when noColor is set,
// when NO_COLOR is present in the environment, or when w is not a terminal.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if _, ok := os.LookupEnv("NO_COLOR"); ok || noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func New(r *lipgloss.Renderer) Palette {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}

	return Palette{
		renderer: r,
		fallback: fg(white),
		levels: map[model.Level]lipgloss.Style{
			model.LevelInfo:     fg(white),
			model.LevelWarning:  fg(yellow),
			model.LevelError:    fg(red),
			model.LevelDebug:    fg(blue),
			model.LevelCritical: r.NewStyle().Background(red),
			model.LevelDev:      r.NewStyle().Bold(true).Foreground(black).Background(white),
		},
		roles: map[Role]lipgloss.Style{
			RoleText:    fg(white),
			RoleBracket: fg(yellow),
			RoleAccent:  fg(green),
			RoleValue:   fg(magenta),
			RoleAlert:   fg(red),
			RoleNotice:  fg(blue),
			RoleBadge:   r.NewStyle().Background(red),
			RoleHeading: fg(red),
		},
	}
}

// Level returns the style for l, or the default white style for levels
// outside the predefined set.
func (p Palette) Level(l model.Level) lipgloss.Style {
	if s, ok := p.levels[l]; ok {
		return s
	}
	return p.fallback
}

func (p Palette) Role(role Role) lipgloss.Style {
	if s, ok := p.roles[role]; ok {
		return s
	}
	return p.fallback
}

func (p Palette) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// Render is shorthand for p.Role(role).Render(s).
func (p Palette) Render(role Role, s string) string {
	return p.Role(role).Render(s)
}

// Tag renders "[label]" with yellow brackets and the label in the given role.
func (p Palette) Tag(label string, role Role) string {
	return p.Render(RoleBracket, "[") + p.Render(role, label) + p.Render(RoleBracket, "]")
}
