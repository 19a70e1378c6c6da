// Package app wires the gg3 command tree.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gg3-devnet/gg3/internal/config"
	"github.com/gg3-devnet/gg3/internal/eventlog"
	"github.com/gg3-devnet/gg3/internal/execx"
	"github.com/gg3-devnet/gg3/internal/output"
	"github.com/gg3-devnet/gg3/internal/style"
	"github.com/gg3-devnet/gg3/internal/toolkit"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// SetVersionBuildCommitString records the values injected at build time.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit
		if buildDate != "" {
			s += ", " + buildDate
		}
		s += ")"
	}
	return s
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(nil).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	configPath  string
	auditLog    string
	noColor     bool
	verbose     bool
	interactive bool
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	cfg     config.Config
	out     output.Printer
	logger  *log.Logger
	toolkit *toolkit.Toolkit
	audit   *eventlog.Logger
	// auditPath is empty when auditing is off.
	auditPath string
}

func (o *globalOptions) load(cmd *cobra.Command, runner execx.Runner) (*env, error) {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "gg3", Level: log.WarnLevel})
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", o.configPath)

	noColor := o.noColor || cfg.NoColor
	w := cmd.OutOrStdout()
	out := output.NewPrinter(w, style.New(style.NewRenderer(w, noColor)))

	if runner == nil {
		runner = execx.OSRunner{Stdin: cmd.InOrStdin(), Stdout: w, Stderr: cmd.ErrOrStderr()}
	}

	auditPath := cfg.AuditLog
	if o.auditLog != "" {
		auditPath = o.auditLog
	}

	return &env{
		cfg:       cfg,
		out:       out,
		logger:    logger,
		toolkit:   toolkit.New(cfg, runner, out, logger),
		audit:     eventlog.New(cmd.ErrOrStderr(), noColor),
		auditPath: auditPath,
	}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCmd builds the command tree. A nil runner starts real processes.
func NewRootCmd(runner execx.Runner) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "gg3",
		Short: "GG3 Network Toolkit - Analyze, Manage, Secure your network.",
		Long: `GG3 Network Toolkit wraps ping, nslookup, the system service manager and
nmap behind a small interactive shell.

Run without arguments to start the shell, with -i for the menu, or call a
command group directly for a one-shot run.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.interactive {
				return runMenu(cmd, opts, runner)
			}
			return runShell(cmd, opts, runner)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gg3/config.yaml)")
	pf.StringVar(&opts.auditLog, "audit-log", "", "record every dispatched command to this log file")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostic messages")
	root.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the interactive menu")

	root.AddCommand(
		newShellCmd(opts, runner),
		newMenuCmd(opts, runner),
		newLogCmd(opts),
		newVersionCmd(),
	)
	root.AddCommand(newOneShotCmds(opts, runner)...)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gg3 %s\n", versionString())
		},
	}
}
