// Package config resolves buttongen CLI settings from flags, BUTTONGEN_*
// environment variables and an optional buttongen.{yaml,json,toml} file, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Setting keys. Flags use the same names.
const (
	Widgets     = "widgets"
	Pages       = "pages"
	Addr        = "addr"
	LogLevel    = "log-level"
	Dev         = "dev"
	ToggleLabel = "toggle-label"
	ConfigFile  = "config"
)

const envPrefix = "BUTTONGEN"

// Key describes one setting.
type Key struct {
	Key         string
	Default     any
	Description string
}

// Registry lists every setting with its default.
var Registry = []Key{
	{Key: Widgets, Default: "widgets", Description: "directory holding widget documents"},
	{Key: Pages, Default: "", Description: "directory holding pongo2 page templates"},
	{Key: Addr, Default: ":8080", Description: "listen address for serve"},
	{Key: LogLevel, Default: "info", Description: "log level (debug, info, warn, error)"},
	{Key: Dev, Default: false, Description: "human readable development logging"},
	{Key: ToggleLabel, Default: "", Description: "screen-reader label for split-button toggles"},
}

// EnvVar returns the environment variable consulted for key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
}

// Settings is the resolved CLI configuration.
type Settings struct {
	Widgets     string
	Pages       string
	Addr        string
	LogLevel    string
	Dev         bool
	ToggleLabel string
}

// AddFlags registers every setting, plus --config, on flags.
func AddFlags(flags *pflag.FlagSet) {
	for _, k := range Registry {
		switch v := k.Default.(type) {
		case bool:
			flags.Bool(k.Key, v, k.Description)
		default:
			flags.String(k.Key, fmt.Sprint(v), k.Description)
		}
	}
	flags.String(ConfigFile, "", "settings file (default ./buttongen.{yaml,json,toml})")
}

// Load resolves settings. flags must have been parsed; only flags the user
// changed override lower-precedence sources.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	for _, k := range Registry {
		v.SetDefault(k.Key, k.Default)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		configFile, _ = flags.GetString(ConfigFile)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("buttongen")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read settings: %w", err)
		}
	}

	if flags != nil {
		for _, k := range Registry {
			if flag := flags.Lookup(k.Key); flag != nil {
				if err := v.BindPFlag(k.Key, flag); err != nil {
					return Settings{}, fmt.Errorf("config: bind flag %q: %w", k.Key, err)
				}
			}
		}
	}

	return Settings{
		Widgets:     strings.TrimSpace(v.GetString(Widgets)),
		Pages:       strings.TrimSpace(v.GetString(Pages)),
		Addr:        strings.TrimSpace(v.GetString(Addr)),
		LogLevel:    strings.TrimSpace(v.GetString(LogLevel)),
		Dev:         v.GetBool(Dev),
		ToggleLabel: strings.TrimSpace(v.GetString(ToggleLabel)),
	}, nil
}

// NewLogger builds the CLI logger from settings.
func NewLogger(s Settings) (*zap.Logger, error) {
	if s.Dev {
		return zap.NewDevelopment()
	}
	level := s.LogLevel
	if level == "" {
		level = "info"
	}
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = atomic
	return cfg.Build()
}
