package tui

import (
	"time"

	"github.com/Veraticus/ascend/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	BannerDuration time.Duration
	DefaultWeight  float64
	Width          int
	Height         int
	ShowArchived   bool
	ShowHelp       bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		BannerDuration: 10 * time.Second,
		DefaultWeight:  20,
		Width:          80,
		Height:         24,
		ShowHelp:       true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithBannerDuration sets how long unlock banners stay on screen.
func WithBannerDuration(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.BannerDuration = d
		}
	}
}

// WithDefaultWeight sets the weight suggested for new goals.
func WithDefaultWeight(w float64) Option {
	return func(c *Config) {
		if w > 0 {
			c.DefaultWeight = w
		}
	}
}

// WithArchived lists archived goals from the start.
func WithArchived(show bool) Option {
	return func(c *Config) {
		c.ShowArchived = show
	}
}
