package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gg3-devnet/gg3/internal/eventlog"
	"github.com/gg3-devnet/gg3/pkg/model"
)

type stubExecutor struct {
	ran  []model.Option
	fail map[model.Option]error
}

func (s *stubExecutor) Execute(_ context.Context, c model.Command) error {
	s.ran = append(s.ran, c.Option)
	return s.fail[c.Option]
}

func commands() []model.Command {
	return []model.Command{
		{Subcommand: model.SubcommandNetworking, Option: model.OptionPing, Argument: "10.0.0.1"},
		{Subcommand: model.SubcommandNetworking, Option: model.OptionDNS, Argument: "example.com"},
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	boom := errors.New("ping: not found")
	exec := &stubExecutor{fail: map[model.Option]error{model.OptionPing: boom}}

	err := Run(context.Background(), RunConfig{Executor: exec, Commands: commands()})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
	if len(exec.ran) != 2 {
		t.Errorf("ran %v, want both commands", exec.ran)
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &stubExecutor{}
	err := Run(ctx, RunConfig{Executor: exec, Commands: commands()})
	if !errors.Is(err, context.Canceled) || len(exec.ran) != 0 {
		t.Errorf("err=%v ran=%v", err, exec.ran)
	}
}

func TestRunAudits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	err := Run(context.Background(), RunConfig{
		Executor:  &stubExecutor{},
		Commands:  commands(),
		Audit:     eventlog.New(io.Discard, true),
		AuditPath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "[INFO]: networking --"); n != 2 {
		t.Errorf("audit has %d command lines, want 2:\n%s", n, data)
	}
}
