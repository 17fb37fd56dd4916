package cli

import (
	"fmt"

	"cpu-scheduler/api"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != 0 {
				cfg.Port = port
			}
			app := api.NewApp(cfg, logger)
			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("starting scheduler api", "addr", addr, "time_quantum", cfg.RoundRobinTimeQuantum)
			return app.Listen(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
