package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	v := viper.New()
	SetDefaults(v)

	s, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "/home/tester/.local/share/ascend/ascend.db", s.DatabasePath)
	assert.Empty(t, s.CatalogPath)
	assert.Equal(t, 20.0, s.DefaultWeight)
	assert.Equal(t, 10*time.Second, s.NotificationDuration)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "default", s.Theme)
}

func TestFromViperConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"database:",
		"  path: " + filepath.Join(dir, "goals.db"),
		"catalog:",
		"  path: " + filepath.Join(dir, "catalog.toml"),
		"goals:",
		"  default_weight: 12.5",
		"notifications:",
		"  display_seconds: 3",
		"logging:",
		"  level: debug",
		"  format: json",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "goals.db"), s.DatabasePath)
	assert.Equal(t, filepath.Join(dir, "catalog.toml"), s.CatalogPath)
	assert.Equal(t, 12.5, s.DefaultWeight)
	assert.Equal(t, 3*time.Second, s.NotificationDuration)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestFromViperInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "empty database path", key: KeyDatabasePath, value: "", wantErr: common.ErrMissingConfig},
		{name: "zero default weight", key: KeyDefaultWeight, value: 0, wantErr: common.ErrInvalidConfig},
		{name: "default weight over budget", key: KeyDefaultWeight, value: 150, wantErr: common.ErrInvalidConfig},
		{name: "non-positive display time", key: KeyNotificationDuration, value: 0, wantErr: common.ErrInvalidConfig},
		{name: "unknown log level", key: KeyLogLevel, value: "chatty", wantErr: common.ErrInvalidConfig},
		{name: "unknown log format", key: KeyLogFormat, value: "xml", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := FromViper(v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
