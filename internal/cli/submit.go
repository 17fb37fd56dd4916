package cli

import (
	"fmt"
	"os"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"

	"github.com/spf13/cobra"
)

// defaultServer returns the server URL, checking SCHEDULER_SERVER first.
func defaultServer() string {
	if s := os.Getenv("SCHEDULER_SERVER"); s != "" {
		return s
	}
	return "http://localhost:9095"
}

func newSubmitCmd() *cobra.Command {
	var (
		jobs    jobFlags
		server  string
		policy  string
		quantum int
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send jobs to a running scheduler server and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := jobs.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantum") {
				request.TimeQuantum = requests.Quantum(quantum)
			}
			client := NewClient(server, logger)

			if policy == "all" {
				response, err := client.Compare(request)
				if err != nil {
					return fmt.Errorf("submit compare: %w", err)
				}
				report.RenderComparison(cmd.OutOrStdout(), response)
				return nil
			}

			response, err := client.Schedule(policy, request)
			if err != nil {
				return fmt.Errorf("submit %s: %w", policy, err)
			}
			report.RenderSchedule(cmd.OutOrStdout(), response)
			return nil
		},
	}
	jobs.bind(cmd)
	cmd.Flags().StringVar(&server, "server", defaultServer(), "Scheduler server URL (or SCHEDULER_SERVER env)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "all", "Policy: fcfs, sjf, priority, round_robin or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default: server config)")
	return cmd
}
