package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/progress"
)

// ShortIDLength is how many characters of a goal id the tables show.
const ShortIDLength = 8

// ShortID trims id for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// RenderGoals writes the goal table.
func RenderGoals(w io.Writer, goals []model.Goal) error {
	if len(goals) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No goals yet. Use 'ascend add' to create one."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Status"),
		TableHeaderStyle.Render("Difficulty"),
		TableHeaderStyle.Render("Weight"),
		TableHeaderStyle.Render("Points"),
		TableHeaderStyle.Render("Title"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", ShortIDLength),
		strings.Repeat("-", 9),
		strings.Repeat("-", 10),
		strings.Repeat("-", 6),
		strings.Repeat("-", 6),
		strings.Repeat("-", 30))

	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f%%\t%d\t%s\n",
			ShortID(g.ID),
			statusLabel(g),
			g.Difficulty,
			g.Weight,
			g.Points,
			g.Title)
	}
	return tw.Flush()
}

func statusLabel(g model.Goal) string {
	switch {
	case g.Archived:
		return "archived"
	case g.Completed:
		return SuccessIcon + " done"
	default:
		return "open"
	}
}

// RenderGoalDetail writes a single goal as a box.
func RenderGoalDetail(w io.Writer, g model.Goal) error {
	lines := []string{
		SubtleStyle.Render(g.ID),
		g.Description,
		"",
		fmt.Sprintf("Difficulty: %s   Weight: %.1f%%   Points: %d", g.Difficulty, g.Weight, g.Points),
		fmt.Sprintf("Status: %s", statusLabel(g)),
	}
	if g.CompletedAt != nil {
		lines = append(lines, SubtleStyle.Render("Completed "+g.CompletedAt.Format("2006-01-02 15:04")))
	}
	_, err := fmt.Fprintln(w, RenderBox(g.Title, strings.Join(lines, "\n")))
	return err
}

// RenderStats writes the progress summary followed by a bar showing how far
// the current level has progressed.
func RenderStats(w io.Writer, stats model.ProgressStats, available float64, archived int) error {
	summary := []string{
		fmt.Sprintf("%s Level %d", TrophyIcon, stats.CurrentLevel),
		fmt.Sprintf("Total points:     %d", stats.TotalPoints),
		fmt.Sprintf("Goals completed:  %d / %d", stats.CompletedGoals, stats.TotalGoals),
		fmt.Sprintf("Overall progress: %.1f%%", stats.TotalProgress),
		fmt.Sprintf("Available weight: %.1f%%", available),
	}
	if archived > 0 {
		summary = append(summary, SubtleStyle.Render(fmt.Sprintf("%s %d archived", ArchiveIcon, archived)))
	}
	if _, err := fmt.Fprintln(w, RenderBox("Progress", strings.Join(summary, "\n"))); err != nil {
		return err
	}
	return RenderLevelBar(w, stats)
}

// RenderLevelBar draws the progress within the current level.
func RenderLevelBar(w io.Writer, stats model.ProgressStats) error {
	bar := progressbar.NewOptions(progress.PointsPerLevel,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[magenta][bold]Level %d[reset]", stats.CurrentLevel)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[magenta]=[reset]",
			SaucerHead:    "[magenta]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	if err := bar.Set(progress.PointsPerLevel - stats.PointsToNextLevel); err != nil {
		return fmt.Errorf("failed to draw level bar: %w", err)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", SubtleStyle.Render(fmt.Sprintf("%d points to level %d", stats.PointsToNextLevel, stats.CurrentLevel+1)))
	return err
}

// RenderCompanions writes the companion roster.
func RenderCompanions(w io.Writer, companions []model.Companion) error {
	if len(companions) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No companions to show."))
		return err
	}

	if _, err := fmt.Fprintln(w, FormatTitle("Shadow Army")); err != nil {
		return err
	}

	// Rarity is colored, so it goes last where its escape codes cannot
	// skew column widths.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render(" "),
		TableHeaderStyle.Render("Name"),
		TableHeaderStyle.Render("Points"),
		TableHeaderStyle.Render("Abilities"),
		TableHeaderStyle.Render("Rarity"))
	for _, c := range companions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			lockIcon(c.Unlocked, CompanionIcon),
			c.Name,
			c.RequiredPoints,
			strings.Join(c.Abilities, ", "),
			FormatRarity(c.Rarity))
	}
	return tw.Flush()
}

// RenderItems writes the item inventory.
func RenderItems(w io.Writer, items []model.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No items to show."))
		return err
	}

	if _, err := fmt.Fprintln(w, FormatTitle("Inventory")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render(" "),
		TableHeaderStyle.Render("Name"),
		TableHeaderStyle.Render("Type"),
		TableHeaderStyle.Render("Points"),
		TableHeaderStyle.Render("Rarity"))
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			lockIcon(it.Unlocked, ItemIcon),
			it.Name,
			it.Type,
			it.RequiredPoints,
			FormatRarity(it.Rarity))
	}
	return tw.Flush()
}

func lockIcon(unlocked bool, icon string) string {
	if unlocked {
		return icon
	}
	return LockIcon
}

// RenderUnlock formats the banner shown when something unlocks.
func RenderUnlock(event model.UnlockEvent) string {
	body := event.Description
	if event.ImageRef != "" {
		body += "\n" + SubtleStyle.Render(event.ImageRef)
	}
	return RenderBox(event.Title(), body)
}
