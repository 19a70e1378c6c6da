package pipeline

import (
	"context"
	"errors"

	"github.com/gg3-devnet/gg3/internal/shell"
	"github.com/gg3-devnet/gg3/pkg/model"
)

type RunConfig struct {
	Executor  shell.Executor
	Commands  []model.Command
	Audit     shell.Auditor
	AuditPath string
}

// Run executes the commands in order outside the interactive loop, for the
// one-shot subcommands and the menu. Every command runs even if an earlier
// one failed; the failures are joined in the result.
func Run(ctx context.Context, cfg RunConfig) error {
	var errs []error
	for _, c := range cfg.Commands {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if cfg.Audit != nil && cfg.AuditPath != "" {
			if err := cfg.Audit.Log(c.String(), model.LevelInfo, cfg.AuditPath, true); err != nil {
				errs = append(errs, err)
			}
		}
		if err := cfg.Executor.Execute(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
