package main

import (
	"github.com/Veraticus/ascend/internal/cli"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, points and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closeStore, err := openGoalStore(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			return cli.RenderStats(cmd.OutOrStdout(), store.Stats(), store.AvailableWeight(), store.ArchivedCount())
		},
	}
}
