package main

import (
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/okian/squads/internal/adapters/render"
	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/balance"
	"github.com/okian/squads/internal/domain/types"
	"github.com/okian/squads/pkg/logger"
)

// Output formats for the balance command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

type balanceOptions struct {
	rosterPath string
	squads     int
	strategy   string
	output     string
}

func newBalanceCmd() *cobra.Command {
	opts := &balanceOptions{}
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Split a roster file into balanced squads",
		Long: `Reads a JSON or YAML roster, forms --squads squads of equal size and
prints them followed by the players left waiting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.rosterPath, "roster", "r", "", "roster file (.json, .yaml or .yml)")
	cmd.Flags().IntVarP(&opts.squads, "squads", "n", 2, "number of squads to form")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", balance.GreedyName, fmt.Sprintf("balancing strategy %v", balance.Names()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table or json")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

func runBalance(cmd *cobra.Command, opts *balanceOptions) error {
	if opts.output != outputTable && opts.output != outputJSON {
		return fmt.Errorf("unknown output %q", opts.output)
	}
	strategy, err := balance.Lookup(opts.strategy)
	if err != nil {
		return err
	}
	pool, err := roster.LoadFile(opts.rosterPath)
	if err != nil {
		return err
	}

	p := balance.New(balance.WithStrategy(strategy), balance.WithLogger(logger.Named("squadctl")))
	squads, leftover, err := p.Balance(cmd.Context(), opts.squads, pool)
	if err != nil {
		return err
	}
	res := types.NewResult(uuid.NewString(), strategy.Name(), opts.squads, squads, leftover.Players())

	out := cmd.OutOrStdout()
	if opts.output == outputJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprintln(out, render.TerminalResult(res, leftover.Players()))
	return err
}
