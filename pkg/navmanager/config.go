package navmanager

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the file form of a navigation setup.
type Config struct {
	InitialRoute string       `mapstructure:"initial_route"`
	Locale       string       `mapstructure:"locale"`
	Log          LogConfig    `mapstructure:"log"`
	Routes       RoutesConfig `mapstructure:"routes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path          string `mapstructure:"path"`
	Level         string `mapstructure:"level"`
	Console       bool   `mapstructure:"console"`
	InternalDebug bool   `mapstructure:"internal_debug"`
}

// RoutesConfig holds route table policy.
type RoutesConfig struct {
	RejectDuplicates bool `mapstructure:"reject_duplicates"`
}

// LoadConfig reads a TOML config file. An empty path skips the file and
// uses defaults. Env var overrides use prefix NAVMANAGER_, with dots
// replaced by underscores (NAVMANAGER_LOG_LEVEL).
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("initial_route", "/")
	v.SetDefault("locale", "en")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.internal_debug", false)
	v.SetDefault("routes.reject_duplicates", false)

	v.SetConfigType("toml")
	v.SetEnvPrefix("NAVMANAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Options converts the logging and locale settings to Options for Init.
func (c Config) Options() Options {
	return Options{
		LogPath:        c.Log.Path,
		LogLevel:       c.Log.Level,
		InternalDebug:  c.Log.InternalDebug,
		DisableConsole: !c.Log.Console,
		Locale:         c.Locale,
	}
}

// ManagerOptions returns ManagerOptions seeded from the config.
// The caller still supplies the route table and any collaborators.
func (c Config) ManagerOptions(routes []RouteEntry) ManagerOptions {
	return ManagerOptions{
		InitialRoute:          c.InitialRoute,
		Routes:                routes,
		RejectDuplicateRoutes: c.Routes.RejectDuplicates,
	}
}
