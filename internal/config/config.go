package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"worldmap/internal/worldmap"
)

// Config holds all application configuration.
type Config struct {
	Resolution string     `mapstructure:"resolution"`
	Color      string     `mapstructure:"color"`
	Data       DataConfig `mapstructure:"data"`
	Log        LogConfig  `mapstructure:"log"`
}

// DataConfig holds one dataset path per resolution. Empty means not available.
type DataConfig struct {
	Low  string `mapstructure:"low"`
	Med  string `mapstructure:"med"`
	High string `mapstructure:"high"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from flags, environment, an optional config file
// and defaults, in that order of precedence. args excludes the program name.
// A positional argument (or --data) replaces the active resolution's path.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("worldmap", pflag.ContinueOnError)
	cfgFile := fs.String("config", "", "config file (default ./config.yaml or ~/.config/worldmap/config.yaml)")
	fs.StringP("resolution", "r", "high", "dataset resolution to draw: low, med or high")
	data := fs.String("data", "", "dataset file for the selected resolution")
	fs.String("color", "#3B82F6", "map colour (hex or ANSI number)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-file", "", "append JSON logs to this file (disabled when empty)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: worldmap [flags] [dataset]\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("resolution", "high")
	v.SetDefault("color", "#3B82F6")
	v.SetDefault("data.low", "")
	v.SetDefault("data.med", "")
	v.SetDefault("data.high", filepath.Join("data", "world_10.txt"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	for key, flag := range map[string]string{
		"resolution": "resolution",
		"color":      "color",
		"log.level":  "log-level",
		"log.file":   "log-file",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", *cfgFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "worldmap"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: WORLDMAP_DATA_HIGH -> data.high
	v.SetEnvPrefix("WORLDMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	override := *data
	if fs.NArg() > 0 {
		override = fs.Arg(0)
	}
	if override != "" {
		if r, err := worldmap.ParseResolution(cfg.Resolution); err == nil {
			cfg.Data.set(r, override)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	r, err := worldmap.ParseResolution(c.Resolution)
	if err != nil {
		errs = append(errs, "resolution: "+err.Error())
	} else if c.Data.Paths()[r] == "" {
		errs = append(errs, fmt.Sprintf("data.%s is required for resolution %s", r, r))
	}
	if c.Color == "" {
		errs = append(errs, "color is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a level", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ActiveResolution returns the parsed resolution tag.
func (c *Config) ActiveResolution() worldmap.Resolution {
	r, _ := worldmap.ParseResolution(c.Resolution)
	return r
}

// Paths maps each resolution to its configured file, skipping empty ones.
func (d DataConfig) Paths() map[worldmap.Resolution]string {
	out := make(map[worldmap.Resolution]string, 3)
	for r, p := range map[worldmap.Resolution]string{
		worldmap.Low:  d.Low,
		worldmap.Med:  d.Med,
		worldmap.High: d.High,
	} {
		if p != "" {
			out[r] = p
		}
	}
	return out
}

func (d *DataConfig) set(r worldmap.Resolution, path string) {
	switch r {
	case worldmap.Low:
		d.Low = path
	case worldmap.Med:
		d.Med = path
	case worldmap.High:
		d.High = path
	}
}
