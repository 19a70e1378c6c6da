package eventlog

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gg3-devnet/gg3/pkg/model"
)

var lineRE = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[([^\]]*)\]: (.*)$`)

func newTestLogger(console *bytes.Buffer) *Logger {
	l := New(console, true)
	l.Now = func() time.Time { return time.Date(2025, 4, 17, 9, 5, 3, 0, time.Local) }
	return l
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestLogFormatsEveryLevel(t *testing.T) {
	levels := append([]model.Level{}, model.Levels...)
	levels = append(levels, "TRACE", "notice")

	for _, level := range levels {
		t.Run(string(level), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "events.log")
			var console bytes.Buffer
			if err := newTestLogger(&console).Log("disk almost full", level, path, false); err != nil {
				t.Fatalf("Log() error = %v", err)
			}

			lines := readLines(t, path)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			m := lineRE.FindStringSubmatch(lines[0])
			if m == nil {
				t.Fatalf("line %q does not match the log format", lines[0])
			}
			if m[1] != string(level) || m[2] != "disk almost full" {
				t.Errorf("parsed level=%q message=%q", m[1], m[2])
			}

			want := `[2025-04-17 09:05:03] [` + string(level) + `]: "disk almost full"` + "\n"
			if console.String() != want {
				t.Errorf("console = %q, want %q", console.String(), want)
			}
		})
	}
}

func TestLogAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	l := newTestLogger(&bytes.Buffer{})

	msgs := []string{"first", "second", "third", "fourth"}
	for _, msg := range msgs {
		if err := l.Log(msg, model.LevelInfo, path, true); err != nil {
			t.Fatalf("Log(%q) error = %v", msg, err)
		}
	}

	lines := readLines(t, path)
	if len(lines) != len(msgs) {
		t.Fatalf("got %d lines, want %d", len(lines), len(msgs))
	}
	for i, msg := range msgs {
		if want := "[2025-04-17 09:05:03] [INFO]: " + msg; lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestQuietSuppressesConsole(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "events.log")
	if err := newTestLogger(&console).Log("silent", model.LevelDebug, path, true); err != nil {
		t.Fatal(err)
	}
	if console.Len() != 0 {
		t.Errorf("console = %q, want empty", console.String())
	}
}

func TestPermissionDeniedOpenIsReportedAndReturned(t *testing.T) {
	var console bytes.Buffer
	l := newTestLogger(&console)
	l.Open = func(path string) (io.WriteCloser, error) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}

	err := l.Log("denied", model.LevelError, "/var/log/gg3.log", false)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Log() error = %v, want fs.ErrPermission", err)
	}
	if want := "*fs.PathError: Open /var/log/gg3.log: permission denied\n"; console.String() != want {
		t.Errorf("console = %q, want %q", console.String(), want)
	}
}

func TestOtherOpenFailureIsReturnedQuietly(t *testing.T) {
	var console bytes.Buffer
	l := newTestLogger(&console)
	boom := errors.New("disk on fire")
	l.Open = func(string) (io.WriteCloser, error) { return nil, boom }

	if err := l.Log("lost", model.LevelInfo, "x.log", false); !errors.Is(err, boom) {
		t.Fatalf("Log() error = %v, want %v", err, boom)
	}
	if console.Len() != 0 {
		t.Errorf("console = %q, want nothing", console.String())
	}
}

func TestLogEventAppendsToDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	if err := LogEvent("first", model.LevelInfo, path, true); err != nil {
		t.Fatal(err)
	}
	if err := LogEvent("second", model.LevelCritical, path, true); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	for i, want := range []string{"[INFO]: first", "[CRITICAL]: second"} {
		if !strings.HasSuffix(lines[i], want) || !lineRE.MatchString(lines[i]) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestPermissionFailureOnRealFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.log")
	if err := os.WriteFile(path, nil, 0o444); err != nil {
		t.Fatal(err)
	}

	var console bytes.Buffer
	err := newTestLogger(&console).Log("denied", model.LevelError, path, false)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Log() error = %v, want fs.ErrPermission", err)
	}

	out := console.String()
	if !strings.HasPrefix(out, "*fs.PathError: Open ") {
		t.Errorf("diagnostic = %q", out)
	}
	if strings.Contains(out, "denied\"") {
		t.Errorf("entry was echoed despite the failure: %q", out)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":                          "",
		"open x: PERMISSION denied": "Open x: permission denied",
		"é":                         "É",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
