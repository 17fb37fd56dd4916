package cli

import (
	"errors"
	"time"

	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/requests"

	"github.com/spf13/cobra"
)

type jobFlags struct {
	input  string
	random int
	seed   int64
}

func (f *jobFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Jobs file (.csv pid,arrival,burst[,priority] / .yaml / .json)")
	cmd.Flags().IntVar(&f.random, "random", 0, "Generate this many random jobs instead of reading a file")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for --random (0 picks one from the clock)")
}

func (f *jobFlags) load() (*requests.ScheduleRequests, error) {
	switch {
	case f.random < 0:
		return nil, errors.New("--random must not be negative")
	case f.input != "" && f.random > 0:
		return nil, errors.New("--input and --random are mutually exclusive")
	case f.input != "":
		return loader.Load(f.input)
	case f.random > 0:
		seed := f.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Info("generated random jobs", "count", f.random, "seed", seed)
		return loader.Generate(f.random, seed), nil
	default:
		return nil, errors.New("either --input or --random is required")
	}
}
