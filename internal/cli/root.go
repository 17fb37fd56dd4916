package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpu-scheduler binary.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Deterministic CPU scheduling simulator",
		Long:  "cpu-scheduler simulates FCFS, SJF, priority and round robin dispatching on a single virtual CPU and reports Gantt charts and waiting times.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var (
				loaded *config.SchedulerConfig
				err    error
			)
			if flagConfig == "" {
				loaded, err = config.GetSchedulerConfig()
			} else {
				loaded, err = config.Load(flagConfig)
			}
			if err != nil {
				return err
			}
			// copy so flag overrides never leak into the shared config
			c := *loaded
			if cmd.Flags().Changed("log-level") {
				c.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				c.LogFormat = flagLogFormat
			}
			cfg = &c
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newServeCmd(),
		newSubmitCmd(),
	)

	return root
}

// resolveQuantum picks the --quantum flag when it was set, then the input
// file value, then the configured default.
func resolveQuantum(cmd *cobra.Command, flag int, fromInput *int) int {
	if cmd.Flags().Changed("quantum") {
		return flag
	}
	if fromInput != nil {
		return *fromInput
	}
	return cfg.RoundRobinTimeQuantum
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
