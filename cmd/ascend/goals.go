package main

import (
	"fmt"

	"github.com/Veraticus/ascend/internal/cli"
	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		description string
		difficulty  string
		weight      float64
		noPrompt    bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new goal",
		Long: `Create a goal and give it a share of the 100% weight budget.

Other active goals shrink proportionally to make room. Missing fields are
asked for interactively unless --no-prompt is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, settings, closeStore, err := openGoalStore(ctx, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			in := engine.CreateGoalInput{
				Description: description,
				Weight:      weight,
			}
			if difficulty != "" {
				d, parseErr := model.ParseDifficulty(difficulty)
				if parseErr != nil {
					return common.NewUserError(parseErr.Error(), nil)
				}
				in.Difficulty = d
			}
			if len(args) == 1 {
				in.Title = args[0]
			}

			suggested := store.SuggestedWeight(settings.DefaultWeight)
			if in.Weight == 0 && store.AvailableWeight() < suggested {
				writeLine(out, cli.FormatWarning("The weight budget is full; other active goals will be scaled down"))
			}

			if noPrompt {
				if in.Difficulty == "" {
					in.Difficulty = model.DefaultDifficulty
				}
				if in.Weight == 0 {
					in.Weight = suggested
				}
			} else {
				form := cli.NewGoalForm(cmd.InOrStdin(), out)
				if err := form.Complete(ctx, &in, suggested); err != nil {
					return fmt.Errorf("failed to read goal: %w", err)
				}
			}

			goal, err := store.CreateGoal(ctx, in)
			if err != nil {
				return explain(err)
			}

			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Added %q (%s, %.1f%%, %d points)", goal.Title, goal.Difficulty, goal.Weight, goal.Points)))
			writeLine(out, cli.SubtleStyle.Render("id "+goal.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what finishing the goal looks like")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard (default medium)")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "share of the weight budget, in (0,100]")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "fail instead of asking for missing fields")

	return cmd
}

func listCmd() *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		Long:    `Display goals in creation order. Archived goals are hidden unless --archived is given.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closeStore, err := openGoalStore(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()
			if err := cli.RenderGoals(out, store.Goals(archived)); err != nil {
				return err
			}
			if n := store.ArchivedCount(); n > 0 && !archived {
				writeLine(out, cli.SubtleStyle.Render(fmt.Sprintf("%d archived goal(s) hidden, use --archived to show them", n)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&archived, "archived", "a", false, "include archived goals")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore, err := openGoalStore(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := resolveGoal(store, args[0])
			if err != nil {
				return err
			}
			goal, _ := store.Goal(id)
			return cli.RenderGoalDetail(cmd.OutOrStdout(), goal)
		},
	}
}

func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Complete a goal, or reopen a completed one",
		Long: `Toggle a goal's completion. Completing pays out its points and returns its
weight to the pool; reopening takes the points back but the weight stays released.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, _, closeStore, err := openGoalStore(ctx, cli.NewNotifier(out))
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := resolveGoal(store, args[0])
			if err != nil {
				return err
			}
			outcome, err := store.ToggleGoal(ctx, id)
			if err != nil {
				return explain(err)
			}

			if !outcome.Completed {
				writeLine(out, cli.FormatInfo(fmt.Sprintf("Reopened %q (%d points total)", outcome.Goal.Title, outcome.After.TotalPoints)))
				return nil
			}
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Completed %q: +%d points (%d total)", outcome.Goal.Title, outcome.Goal.Points, outcome.After.TotalPoints)))
			if outcome.LeveledUp {
				writeLine(out, cli.TitleStyle.Render(fmt.Sprintf("%s Level up! You are now level %d", cli.TrophyIcon, outcome.After.CurrentLevel)))
			}
			return nil
		},
	}
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a completed goal",
		Long:  `Hide a completed goal from the default list. Its points keep counting.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, _, closeStore, err := openGoalStore(ctx, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := resolveGoal(store, args[0])
			if err != nil {
				return err
			}
			goal, err := store.ArchiveGoal(ctx, id)
			if err != nil {
				return explain(err)
			}
			writeLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Archived %q", goal.Title)))
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal",
		Long: `Remove a goal permanently. An active goal's weight is shared evenly among the
remaining active goals. A completed goal's points are removed from the total.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, _, closeStore, err := openGoalStore(ctx, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := resolveGoal(store, args[0])
			if err != nil {
				return err
			}
			goal, _ := store.Goal(id)

			if !force {
				fmt.Fprint(out, cli.FormatPrompt(fmt.Sprintf("Delete %q? [y/N]", goal.Title)))
				var answer string
				if _, scanErr := fmt.Fscanln(cmd.InOrStdin(), &answer); scanErr != nil || (answer != "y" && answer != "yes") {
					writeLine(out, cli.FormatInfo("Nothing deleted"))
					return nil
				}
			}

			if _, err := store.DeleteGoal(ctx, id); err != nil {
				return explain(err)
			}
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Deleted %q", goal.Title)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without asking")
	return cmd
}
