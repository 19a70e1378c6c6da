// Package eventlog appends timestamped event lines to a file and optionally
// echoes a colourised copy to the console.
package eventlog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gg3-devnet/gg3/internal/style"
	"github.com/gg3-devnet/gg3/pkg/model"
)

// DefaultFile is the log destination used when none is given.
const DefaultFile = "gg3utils.log"

type Logger struct {
	Console io.Writer
	Palette style.Palette
	Now     func() time.Time
	// Open opens destination for appending. Nil means an O_APPEND|O_CREATE
	// file with mode 0644.
	Open func(destination string) (io.WriteCloser, error)
}

// New returns a Logger that echoes to console using a palette derived from it.
func New(console io.Writer, noColor bool) *Logger {
	return &Logger{
		Console: console,
		Palette: style.New(style.NewRenderer(console, noColor)),
		Now:     time.Now,
	}
}

// LogEvent appends one entry to destination using a stdout logger.
func LogEvent(message string, level model.Level, destination string, quiet bool) error {
	return New(os.Stdout, false).Log(message, level, destination, quiet)
}

// Log appends "[YYYY-MM-DD HH:MM:SS] [LEVEL]: message" to destination,
// creating the file if needed. Unless quiet, a coloured rendering is printed
// to the console. A permission failure is reported on the console before it
// is returned.
func (l *Logger) Log(message string, level model.Level, destination string, quiet bool) error {
	if destination == "" {
		destination = DefaultFile
	}
	entry := model.LogEntry{Time: l.now(), Level: level, Message: message}

	if err := l.appendLine(destination, entry.Line()+"\n"); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintf(l.console(), "%T: %s\n", err, capitalize(err.Error()))
		}
		return fmt.Errorf("log event to %s: %w", destination, err)
	}

	if !quiet {
		fmt.Fprintln(l.console(), l.Render(entry))
	}
	return nil
}

// Render returns the console form of entry.
func (l *Logger) Render(e model.LogEntry) string {
	p := l.Palette
	text := p.Role(style.RoleText)
	return text.Render("[") + p.Render(style.RoleValue, e.Timestamp()) + text.Render("] [") +
		p.Level(e.Level).Render(string(e.Level)) + text.Render("]: \"") +
		p.Render(style.RoleAccent, e.Message) + text.Render("\"")
}

func openAppend(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

func (l *Logger) appendLine(path, line string) (err error) {
	open := l.Open
	if open == nil {
		open = openAppend
	}
	f, err := open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, line)
	return err
}

func (l *Logger) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func (l *Logger) console() io.Writer {
	if l.Console == nil {
		return io.Discard
	}
	return l.Console
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
