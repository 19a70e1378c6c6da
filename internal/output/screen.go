package output

import (
	"io"

	"github.com/gg3-devnet/gg3/internal/style"
	"github.com/muesli/termenv"
)

// Screen clears the terminal and redraws the banner and menu.
type Screen struct {
	w   io.Writer
	pal style.Palette
	tty *termenv.Output
}

func NewScreen(w io.Writer, pal style.Palette) Screen {
	return Screen{w: w, pal: pal, tty: termenv.NewOutput(w)}
}

func (s Screen) Clear() {
	s.tty.ClearScreen()
}

func (s Screen) Redraw() {
	io.WriteString(s.w, Banner(s.pal)) //nolint:errcheck
	io.WriteString(s.w, Menu(s.pal))   //nolint:errcheck
}
