package app

import (
	"fmt"
	"strings"

	"github.com/gg3-devnet/gg3/internal/config"
	"github.com/gg3-devnet/gg3/internal/eventlog"
	"github.com/gg3-devnet/gg3/pkg/model"
	"github.com/spf13/cobra"
)

func newLogCmd(opts *globalOptions) *cobra.Command {
	var (
		message string
		level   string
		logfile string
		quiet   bool
	)

	names := make([]string, len(model.Levels))
	for i, l := range model.Levels {
		names[i] = string(l)
	}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an event with a message and severity level",
		Example: `  gg3 log -m "backup finished"
  gg3 log -m "disk at 95%" -l WARNING -f /var/log/gg3.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := model.Level(level)
			if !lvl.Known() {
				return fmt.Errorf("invalid level %q (choose from %s)", level, strings.Join(names, ", "))
			}

			if !cmd.Flags().Changed("logfile") {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				if cfg.LogFile != "" {
					logfile = cfg.LogFile
				}
			}

			logger := eventlog.New(cmd.OutOrStdout(), opts.noColor)
			return logger.Log(message, lvl, logfile, quiet)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&message, "message", "m", "", "message to log")
	f.StringVarP(&level, "level", "l", string(model.LevelInfo), "log level: "+strings.Join(names, "|"))
	f.StringVarP(&logfile, "logfile", "f", eventlog.DefaultFile, "path to logfile")
	f.BoolVarP(&quiet, "quiet", "q", false, "suppress console output")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.RegisterFlagCompletionFunc("level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
