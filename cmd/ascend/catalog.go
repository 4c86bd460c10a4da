package main

import (
	"github.com/Veraticus/ascend/internal/catalog"
	"github.com/Veraticus/ascend/internal/cli"
	"github.com/spf13/cobra"
)

func companionsCmd() *cobra.Command {
	var (
		unlocked bool
		byRarity bool
	)

	cmd := &cobra.Command{
		Use:   "companions",
		Short: "List companions and which ones you have unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closeStore, err := openGoalStore(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			companions := store.Companions()
			if unlocked {
				companions = store.UnlockedCompanions()
			}
			if byRarity {
				companions = catalog.ByRarity(companions)
			}
			return cli.RenderCompanions(cmd.OutOrStdout(), companions)
		},
	}

	cmd.Flags().BoolVarP(&unlocked, "unlocked", "u", false, "only show unlocked companions")
	cmd.Flags().BoolVar(&byRarity, "by-rarity", false, "sort by rarity instead of unlock order")
	return cmd
}

func itemsCmd() *cobra.Command {
	var unlocked bool

	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"inventory"},
		Short:   "List items and which ones you have unlocked",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closeStore, err := openGoalStore(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			items := store.Items()
			if unlocked {
				items = store.UnlockedItems()
			}
			return cli.RenderItems(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().BoolVarP(&unlocked, "unlocked", "u", false, "only show unlocked items")
	return cmd
}
