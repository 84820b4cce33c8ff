package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/okian/squads/internal/domain/seeding"
)

func newSeedCmd() *cobra.Command {
	var maxRank int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print bracket seed slots for ranks 1..max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := seeding.Slots(maxRank)
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Rank", "Slot")
			for i, slot := range slots {
				t.Row(strconv.Itoa(i+1), strconv.Itoa(slot))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().IntVarP(&maxRank, "max", "m", 8, "highest rank")
	return cmd
}
