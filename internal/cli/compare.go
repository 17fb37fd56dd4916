package cli

import (
	"fmt"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		jobs     jobFlags
		quantum  int
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all four policies over the same jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := jobs.load()
			if err != nil {
				return err
			}
			response, err := schedulers.CompareAll(request, resolveQuantum(cmd, quantum, request.TimeQuantum),
				schedulers.WithLogger(logger), schedulers.WithMaxIterations(cfg.MaxIterations))
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			if jsonMode {
				return printJSON(cmd, response)
			}
			report.RenderComparison(cmd.OutOrStdout(), response)
			return nil
		},
	}
	jobs.bind(cmd)
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from input or config)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Print the raw result as JSON")
	return cmd
}
