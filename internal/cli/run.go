package cli

import (
	"fmt"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		jobs     jobFlags
		policy   string
		quantum  int
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one scheduling policy",
		Example: `  cpu-scheduler run --policy fcfs --input jobs.csv
  cpu-scheduler run --policy round_robin --quantum 3 --random 5 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := jobs.load()
			if err != nil {
				return err
			}
			response, err := schedulers.Schedule(request, policy, resolveQuantum(cmd, quantum, request.TimeQuantum),
				schedulers.WithLogger(logger), schedulers.WithMaxIterations(cfg.MaxIterations))
			if err != nil {
				return fmt.Errorf("run %s: %w", policy, err)
			}

			if jsonMode {
				return printJSON(cmd, response)
			}
			report.RenderSchedule(cmd.OutOrStdout(), response)
			return nil
		},
	}
	jobs.bind(cmd)
	cmd.Flags().StringVarP(&policy, "policy", "p", schedulers.FirstComeFirstServeName, "Policy: fcfs, sjf, priority, round_robin")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from input or config)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Print the raw result as JSON")
	return cmd
}
