package main

import (
	"io"
	"log/slog"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/tui"
	"github.com/Veraticus/ascend/internal/tui/themes"
	"github.com/spf13/cobra"
)

func boardCmd() *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:     "board",
		Aliases: []string{"tui"},
		Short:   "Open the interactive goal board",
		Long: `Open a full-screen board for managing goals.

Keys: space completes or reopens, n adds a goal, a archives, d deletes,
A shows archived goals, ? toggles help, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, settings, closeStore, err := openGoalStore(ctx, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			// Log lines would tear the alternate screen.
			level, _ := common.ParseLevel(settings.LogLevel)
			if level > slog.LevelDebug {
				if err := common.SetupLoggerTo(io.Discard, level, settings.LogFormat); err != nil {
					return err
				}
			}

			return tui.Run(ctx, store,
				tui.WithTheme(themes.GetTheme(settings.Theme)),
				tui.WithBannerDuration(settings.NotificationDuration),
				tui.WithDefaultWeight(settings.DefaultWeight),
				tui.WithArchived(archived),
			)
		},
	}

	cmd.Flags().BoolVarP(&archived, "archived", "a", false, "start with archived goals visible")
	return cmd
}
