// Package execx is the boundary between the toolkit and the external programs
// it wraps.
package execx

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// LineFunc receives one line of output, including its trailing newline when
// the program wrote one.
type LineFunc func(line string) error

type Runner interface {
	// Run starts the program attached to the terminal and waits for it.
	Run(ctx context.Context, name string, args ...string) error
	// Output waits for the program and returns what it wrote to stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Stream hands each stdout line to fn as soon as it is read.
	Stream(ctx context.Context, fn LineFunc, name string, args ...string) error
	LookPath(file string) (string, error)
}

type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner returns a runner attached to the process's own standard streams.
func NewOSRunner() OSRunner {
	return OSRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r OSRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}

func (r OSRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s %v: %w: %s", name, args, err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s %v: %w", name, args, err)
	}
	return stdout.Bytes(), nil
}

func (r OSRunner) Stream(ctx context.Context, fn LineFunc, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = r.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}

	readErr := forEachLine(stdout, fn)
	if readErr != nil {
		// Drain so the child is not blocked writing into a full pipe.
		io.Copy(io.Discard, stdout) //nolint:errcheck
	}
	waitErr := cmd.Wait()

	switch {
	case readErr != nil:
		return readErr
	case waitErr != nil:
		return fmt.Errorf("%s %v: %w", name, args, waitErr)
	}
	return nil
}

func (OSRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func forEachLine(r io.Reader, fn LineFunc) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
