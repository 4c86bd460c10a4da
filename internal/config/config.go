package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/ledger"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath         = "database.path"
	KeyCatalogPath          = "catalog.path"
	KeyDefaultWeight        = "goals.default_weight"
	KeyLogLevel             = "logging.level"
	KeyLogFormat            = "logging.format"
	KeyNotificationDuration = "notifications.display_seconds"
	KeyTheme                = "ui.theme"
)

// DefaultDatabasePath is used when database.path is unset.
const DefaultDatabasePath = "$HOME/.local/share/ascend/ascend.db"

// Settings is the resolved application configuration.
type Settings struct {
	DatabasePath         string
	CatalogPath          string
	LogLevel             string
	LogFormat            string
	Theme                string
	DefaultWeight        float64
	NotificationDuration time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyDefaultWeight, 20.0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyNotificationDuration, 10)
	v.SetDefault(KeyTheme, "default")
}

// FromViper reads and validates Settings from v. Paths are expanded.
func FromViper(v *viper.Viper) (Settings, error) {
	s := Settings{
		DatabasePath:         ExpandPath(v.GetString(KeyDatabasePath)),
		CatalogPath:          ExpandPath(v.GetString(KeyCatalogPath)),
		LogLevel:             v.GetString(KeyLogLevel),
		LogFormat:            v.GetString(KeyLogFormat),
		Theme:                v.GetString(KeyTheme),
		DefaultWeight:        v.GetFloat64(KeyDefaultWeight),
		NotificationDuration: time.Duration(v.GetInt(KeyNotificationDuration)) * time.Second,
	}

	if s.DatabasePath == "" {
		return Settings{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyDatabasePath)
	}
	if s.DefaultWeight <= 0 || s.DefaultWeight > ledger.Budget {
		return Settings{}, fmt.Errorf("%w: %s must be in (0,%.0f], got %v", common.ErrInvalidConfig, KeyDefaultWeight, ledger.Budget, s.DefaultWeight)
	}
	if s.NotificationDuration <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyNotificationDuration)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return Settings{}, fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, s.LogFormat)
	}
	return s, nil
}
