package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLineReaderReadsInOrder(t *testing.T) {
	lines := NewLineReader(strings.NewReader("networking --ping 1.1.1.1\nexit"))
	defer lines.Close()
	ctx := context.Background()

	for _, want := range []string{"networking --ping 1.1.1.1\n", "exit"} {
		got, err := lines.ReadLine(ctx)
		if err != nil || got != want {
			t.Fatalf("ReadLine() = %q, %v; want %q, nil", got, err, want)
		}
	}
	if _, err := lines.ReadLine(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, want io.EOF", err)
	}
}

func TestLineReaderKeepsLineAfterCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	lines := NewLineReader(pr)
	defer lines.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := lines.ReadLine(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ReadLine() error = %v, want deadline exceeded", err)
	}

	go pw.Write([]byte("first\n")) //nolint:errcheck
	got, err := lines.ReadLine(context.Background())
	if err != nil || got != "first\n" {
		t.Fatalf("ReadLine() = %q, %v; want the line typed after the cancel", got, err)
	}

	go pw.Write([]byte("second\n")) //nolint:errcheck
	got, err = lines.ReadLine(context.Background())
	if err != nil || got != "second\n" {
		t.Fatalf("ReadLine() = %q, %v; want %q", got, err, "second\n")
	}
}
