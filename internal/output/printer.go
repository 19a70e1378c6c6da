package output

import (
	"fmt"
	"io"

	"github.com/gg3-devnet/gg3/internal/style"
	"github.com/gg3-devnet/gg3/pkg/model"
)

// Printer writes the toolkit's status lines to an io.Writer. Anything that
// came from the user or from an external program is sanitized before it is
// styled.
type Printer struct {
	w   io.Writer
	pal style.Palette
}

func NewPrinter(w io.Writer, pal style.Palette) Printer {
	return Printer{w: w, pal: pal}
}

func (p Printer) Palette() style.Palette { return p.pal }

// Section prints "[SECTION] action target", e.g. "[NETWORKING] Pinging 1.1.1.1".
func (p Printer) Section(section, action, target string) {
	fmt.Fprintf(p.w, "%s %s\n",
		p.pal.Tag(section, style.RoleText),
		p.pal.Render(style.RoleAccent, action+" ")+p.pal.Render(style.RoleValue, SanitizeTerminal(target)),
	)
}

// Failure prints "[ERROR] what failed: err".
func (p Printer) Failure(what string, err error) {
	fmt.Fprintf(p.w, "%s %s\n",
		p.pal.Tag("ERROR", style.RoleAlert),
		p.pal.Render(style.RoleAccent, what+" failed: ")+p.pal.Render(style.RoleValue, SanitizeTerminal(err.Error())),
	)
}

// Warn prints "[!] msg".
func (p Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.pal.Tag("!", style.RoleAlert), msg)
}

// Error prints "[ERROR] msg" on a line of its own.
func (p Printer) Error(msg string) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.pal.Tag("ERROR", style.RoleAlert), p.pal.Render(style.RoleAccent, msg))
}

// Record prints one extracted resolver record as "[LABEL] address".
func (p Printer) Record(r model.ExtractedRecord) {
	fmt.Fprintf(p.w, "%s %s\n",
		p.pal.Tag(SanitizeTerminal(r.Label), style.RoleText),
		p.pal.Render(style.RoleValue, r.Address),
	)
}

// Farewell prints "[EXITING] msg" surrounded by blank lines.
func (p Printer) Farewell(msg string) {
	fmt.Fprintf(p.w, "\n%s %s\n\n", p.pal.Tag("EXITING", style.RoleNotice), msg)
}

// Goodbye prints the normal exit farewell.
func (p Printer) Goodbye() {
	p.Farewell(p.pal.Render(style.RoleAccent, "Goodbye!"))
}

// Interrupted prints the farewell used when Ctrl+C ends the session.
func (p Printer) Interrupted() {
	fmt.Fprintln(p.w)
	p.Farewell(p.pal.Render(style.RoleAccent, "Caught ") +
		p.pal.Render(style.RoleValue, "Ctrl+C") +
		p.pal.Render(style.RoleAccent, " - Goodbye!"))
}

// Pause prints the acknowledgement prompt shown after a command finishes.
func (p Printer) Pause() {
	fmt.Fprintf(p.w, "\n%s%s%s",
		p.pal.Render(style.RoleAccent, "Press "),
		p.pal.Tag("ENTER", style.RoleNotice),
		p.pal.Render(style.RoleAccent, " to return to menu..."),
	)
}

// Raw writes external program output verbatim apart from sanitization.
func (p Printer) Raw(s string) {
	io.WriteString(p.w, SanitizeTerminal(s)) //nolint:errcheck
}

func (p Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

func (p Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
