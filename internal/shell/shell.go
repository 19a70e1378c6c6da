// Package shell implements the interactive command loop: read a line, parse
// it, run the resulting commands, then pause and redraw the menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gg3-devnet/gg3/internal/output"
	"github.com/gg3-devnet/gg3/pkg/model"
)

type Executor interface {
	Execute(ctx context.Context, c model.Command) error
}

// Screen performs the presentation side effects between commands.
type Screen interface {
	Clear()
	Redraw()
}

// Auditor records dispatched commands. *eventlog.Logger satisfies it.
type Auditor interface {
	Log(message string, level model.Level, destination string, quiet bool) error
}

type Config struct {
	Executor Executor
	In       io.Reader
	Out      output.Printer
	// Screen may be nil, in which case the banner and menu are never drawn.
	Screen Screen
	// Interactive enables the acknowledgement pause and screen clear after
	// each command.
	Interactive bool
	Audit       Auditor
	AuditPath   string
	Logger      *log.Logger
}

type Shell struct {
	cfg    Config
	logger *log.Logger
	lines  *LineReader
}

const invalidInput = "Invalid command or missing arguments. Please try again."

func New(cfg Config) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{cfg: cfg, logger: logger}
}

// Run drives the loop until an exit word, end of input, or cancellation of
// ctx. Cancellation is the interrupt path and is not reported as an error.
func (s *Shell) Run(ctx context.Context) error {
	s.lines = NewLineReader(s.cfg.In)
	defer s.lines.Close()

	s.redraw()
	for {
		s.cfg.Out.Printf("\n> ")
		line, err := s.lines.ReadLine(ctx)
		switch {
		case ctx.Err() != nil:
			s.interrupted()
			return nil
		case errors.Is(err, io.EOF):
			s.goodbye()
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		in, err := Parse(line)
		if err != nil {
			s.logger.Debug("parse failed", "err", err)
			s.audit(model.LevelWarning, err.Error())
			s.cfg.Out.Error(invalidInput)
			continue
		}

		switch in.Kind {
		case InputBlank:
			continue
		case InputExit:
			s.goodbye()
			return nil
		case InputHelp:
			s.redraw()
			continue
		}

		if done := s.dispatch(ctx, in.Commands); done {
			return nil
		}
	}
}

// dispatch runs cmds in order and then waits for acknowledgement. It reports
// whether the loop has to stop.
func (s *Shell) dispatch(ctx context.Context, cmds []model.Command) bool {
	for _, c := range cmds {
		s.audit(model.LevelInfo, c.String())
		if err := s.cfg.Executor.Execute(ctx, c); err != nil {
			s.logger.Debug("command failed", "command", c.String(), "err", err)
		}
		if ctx.Err() != nil {
			s.interrupted()
			return true
		}
	}
	s.cfg.Out.Println()

	if !s.cfg.Interactive {
		return false
	}

	s.cfg.Out.Pause()
	_, err := s.lines.ReadLine(ctx)
	switch {
	case ctx.Err() != nil:
		s.interrupted()
		return true
	case err != nil:
		s.goodbye()
		return true
	}

	if s.cfg.Screen != nil {
		s.cfg.Screen.Clear()
	}
	s.redraw()
	return false
}

func (s *Shell) redraw() {
	if s.cfg.Screen != nil {
		s.cfg.Screen.Redraw()
	}
}

func (s *Shell) goodbye() {
	s.cfg.Out.Goodbye()
}

func (s *Shell) interrupted() {
	s.cfg.Out.Interrupted()
}

func (s *Shell) audit(level model.Level, msg string) {
	if s.cfg.Audit == nil || s.cfg.AuditPath == "" {
		return
	}
	if err := s.cfg.Audit.Log(msg, level, s.cfg.AuditPath, true); err != nil {
		s.logger.Warn("audit log write failed", "path", s.cfg.AuditPath, "err", err)
	}
}
