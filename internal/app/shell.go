package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gg3-devnet/gg3/internal/execx"
	"github.com/gg3-devnet/gg3/internal/output"
	"github.com/gg3-devnet/gg3/internal/pipeline"
	"github.com/gg3-devnet/gg3/internal/shell"
	"github.com/gg3-devnet/gg3/internal/tui"
	"github.com/gg3-devnet/gg3/pkg/model"
	"github.com/spf13/cobra"
)

func newShellCmd(opts *globalOptions, runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive command shell (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts, runner)
		},
	}
}

func newMenuCmd(opts *globalOptions, runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick commands from a full-screen menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts, runner)
		},
	}
}

func runShell(cmd *cobra.Command, opts *globalOptions, runner execx.Runner) error {
	e, err := opts.load(cmd, runner)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	in := cmd.InOrStdin()
	interactive := isTerminal(in)
	e.logger.Debug("starting shell", "interactive", interactive)

	return shell.New(shell.Config{
		Executor:    e.toolkit,
		In:          in,
		Out:         e.out,
		Screen:      output.NewScreen(cmd.OutOrStdout(), e.out.Palette()),
		Interactive: interactive,
		Audit:       e.audit,
		AuditPath:   e.auditPath,
		Logger:      e.logger,
	}).Run(ctx)
}

// runMenu alternates between the full-screen menu and running the chosen
// command in the normal terminal.
func runMenu(cmd *cobra.Command, opts *globalOptions, runner execx.Runner) error {
	e, err := opts.load(cmd, runner)
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return fmt.Errorf("the menu needs an interactive terminal; use 'gg3 shell' instead")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	lines := shell.NewLineReader(in)
	defer lines.Close()

	for {
		if ctx.Err() != nil {
			e.out.Interrupted()
			return nil
		}
		choice, ok, err := tui.Pick(versionString(), in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !ok {
			e.out.Goodbye()
			return nil
		}

		if err := pipeline.Run(ctx, pipeline.RunConfig{
			Executor:  e.toolkit,
			Commands:  []model.Command{choice},
			Audit:     e.audit,
			AuditPath: e.auditPath,
		}); err != nil {
			e.logger.Debug("command failed", "command", choice.String(), "err", err)
		}
		if !awaitEnter(ctx, e.out, lines) {
			return nil
		}
	}
}

// awaitEnter shows the acknowledgement prompt and reports whether the menu
// should open again. Interrupts and end of input print the farewell.
func awaitEnter(ctx context.Context, out output.Printer, lines *shell.LineReader) bool {
	if ctx.Err() != nil {
		out.Interrupted()
		return false
	}
	out.Pause()
	_, err := lines.ReadLine(ctx)
	switch {
	case ctx.Err() != nil:
		out.Interrupted()
		return false
	case err != nil:
		out.Goodbye()
		return false
	}
	return true
}

// newOneShotCmds builds "networking", "services" and "security" as direct
// commands whose flags mirror the shell grammar.
func newOneShotCmds(opts *globalOptions, runner execx.Runner) []*cobra.Command {
	var cmds []*cobra.Command
	for _, sub := range shell.Subcommands() {
		sub := sub // per-iteration copy for the RunE closure (pre-Go 1.22 loop semantics)
		values := map[model.Option]*string{}
		c := &cobra.Command{
			Use:   string(sub),
			Short: "Run " + string(sub) + " actions once and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var commands []model.Command
				for _, opt := range shell.Options(sub) {
					if v := strings.TrimSpace(*values[opt]); v != "" {
						commands = append(commands, model.Command{Subcommand: sub, Option: opt, Argument: v})
					}
				}
				if len(commands) == 0 {
					return fmt.Errorf("%s: no option has a value (use %s)", sub, optionFlags(sub))
				}
				e, err := opts.load(cmd, runner)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runOnce(ctx, e, commands)
			},
		}
		var names []string
		for _, opt := range shell.Options(sub) {
			values[opt] = c.Flags().String(string(opt), "", shell.OptionHelp(opt))
			names = append(names, string(opt))
		}
		c.MarkFlagsOneRequired(names...)
		cmds = append(cmds, c)
	}
	return cmds
}

func optionFlags(sub model.Subcommand) string {
	var flags []string
	for _, opt := range shell.Options(sub) {
		flags = append(flags, "--"+string(opt))
	}
	return strings.Join(flags, " or ")
}

func runOnce(ctx context.Context, e *env, commands []model.Command) error {
	return pipeline.Run(ctx, pipeline.RunConfig{
		Executor:  e.toolkit,
		Commands:  commands,
		Audit:     e.audit,
		AuditPath: e.auditPath,
	})
}
