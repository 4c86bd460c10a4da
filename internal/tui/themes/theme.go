package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ascend/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Rarity        map[model.Rarity]lipgloss.Style
	ProgressBar   lipgloss.Style
	Selected      lipgloss.Style
	StatusPending lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	RoundedBox    lipgloss.Style
	Banner        lipgloss.Style
	Box           lipgloss.Style
	Secondary     lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	GradientStart string
	GradientEnd   string
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:       lipgloss.Color("#7c3aed"),
	Secondary:     lipgloss.Color("#a78bfa"),
	Foreground:    lipgloss.Color("#fafafa"),
	Border:        lipgloss.Color("#404040"),
	Muted:         lipgloss.Color("#737373"),
	GradientStart: "#4c1d95",
	GradientEnd:   "#a78bfa",

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Banner: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#f59e0b")).
		Padding(0, 2),
	ProgressBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),

	Rarity: map[model.Rarity]lipgloss.Style{
		model.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		model.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		model.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("#a855f7")),
		model.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true),
	},
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	// Colors
	Primary:       lipgloss.Color("#cba6f7"),
	Secondary:     lipgloss.Color("#f5c2e7"),
	Foreground:    lipgloss.Color("#cdd6f4"),
	Border:        lipgloss.Color("#45475a"),
	Muted:         lipgloss.Color("#6c7086"),
	GradientStart: "#89b4fa",
	GradientEnd:   "#cba6f7",

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
	Banner: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#f9e2af")).
		Padding(0, 2),
	ProgressBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cba6f7")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f9e2af")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),

	Rarity: map[model.Rarity]lipgloss.Style{
		model.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")),
		model.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		model.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")),
		model.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")).Bold(true),
	},
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// RarityStyle returns the style used for r.
func (t Theme) RarityStyle(r model.Rarity) lipgloss.Style {
	if s, ok := t.Rarity[r]; ok {
		return s
	}
	return t.Normal
}

// DifficultyIcons maps difficulties to icons.
var DifficultyIcons = map[model.Difficulty]string{
	model.DifficultyEasy:   "🗡️",
	model.DifficultyMedium: "⚔️",
	model.DifficultyHard:   "🔥",
}

// GetDifficultyIcon returns an icon for a difficulty.
func GetDifficultyIcon(d model.Difficulty) string {
	if icon, ok := DifficultyIcons[d]; ok {
		return icon
	}
	return "•"
}
