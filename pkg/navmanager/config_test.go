package navmanager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.InitialRoute)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.False(t, cfg.Routes.RejectDuplicates)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navmanager.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
initial_route = "/login"
locale = "ko"

[log]
path = "/tmp/nav/app.log"
level = "debug"
console = false

[routes]
reject_duplicates = true
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/login", cfg.InitialRoute)
	assert.Equal(t, "ko", cfg.Locale)
	assert.Equal(t, "/tmp/nav/app.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	assert.True(t, cfg.Routes.RejectDuplicates)

	opts := cfg.Options()
	assert.Equal(t, Options{
		LogPath:        "/tmp/nav/app.log",
		LogLevel:       "debug",
		DisableConsole: true,
		Locale:         "ko",
	}, opts)

	mopts := cfg.ManagerOptions(nil)
	assert.Equal(t, "/login", mopts.InitialRoute)
	assert.True(t, mopts.RejectDuplicateRoutes)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NAVMANAGER_INITIAL_ROUTE", "/onboarding")
	t.Setenv("NAVMANAGER_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/onboarding", cfg.InitialRoute)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
