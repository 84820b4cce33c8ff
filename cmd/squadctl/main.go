// Command squadctl balances roster files into squads from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/squads/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "squadctl",
		Short:         "Balance players into squads",
		Long:          "squadctl reads a roster file and splits its players into squads with even per-skill totals.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(); err != nil {
				return err
			}
			if verbose {
				return logger.SetLevelString("debug")
			}
			return logger.SetLevelString("warn")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine decisions at debug level")

	root.AddCommand(newBalanceCmd())
	root.AddCommand(newSeedCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
