// Command roster-gen writes random rosters and exercises a running squads
// server with them.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/squads/internal/rostergen"
	"github.com/okian/squads/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumPlayers = 500
	defaultSquads     = 10
	defaultBatchSize  = 100
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func newRootCmd() *cobra.Command {
	cfg := &rostergen.Config{}

	cmd := &cobra.Command{
		Use:           "roster-gen",
		Short:         "Generate rosters and verify a squads server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if !cfg.Verbose {
				if err := logger.SetLevelString("warn"); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultRunTimeout)
			defer cancel()

			stats, err := rostergen.Run(ctx, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d players, placed %d, leftover %d in %s\n",
				stats.PlayersGenerated, stats.PlayersPlaced, stats.PlayersLeftover, stats.Duration)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "base URL of the squads server")
	f.IntVarP(&cfg.NumPlayers, "players", "p", defaultNumPlayers, "number of players to generate")
	f.IntVarP(&cfg.Squads, "squads", "n", defaultSquads, "number of squads to request; 0 skips balancing")
	f.StringVarP(&cfg.Strategy, "strategy", "s", "", "strategy to request (default: server default)")
	f.IntVarP(&cfg.Workers, "workers", "w", runtime.NumCPU()*defaultWorkers, "number of concurrent workers")
	f.IntVar(&cfg.BatchSize, "batch", defaultBatchSize, "players per upload request")
	f.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	f.StringVarP(&cfg.OutputFile, "output", "o", "", "roster file to write (.json or .yaml)")
	f.BoolVar(&cfg.Upload, "upload", true, "upload to the server and verify the result")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
