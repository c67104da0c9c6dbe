package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title               string `mapstructure:"title"`
	LabelWidth          int    `mapstructure:"label_width"`
	ColumnWidth         int    `mapstructure:"column_width"`
	ShowChart           bool   `mapstructure:"show_chart"`
	ChartHeight         int    `mapstructure:"chart_height"`
	SimilarNameDistance int    `mapstructure:"similar_name_distance"`
}

// ExportConfig controls where score cards are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig routes log output to a file while the TUI owns the terminal.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads configuration from file and env. Env var overrides use prefix WINGSCORE_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WINGSCORE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "wingscore"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WINGSCORE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgPath != "" && os.IsNotExist(err)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration used when no file or env override exists.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.title", "WingScore")
	v.SetDefault("ui.label_width", 16)
	v.SetDefault("ui.column_width", 10)
	v.SetDefault("ui.show_chart", false)
	v.SetDefault("ui.chart_height", 8)
	v.SetDefault("ui.similar_name_distance", 2)
	v.SetDefault("export.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "wingscore", "exports"))
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)
}

// Validate rejects settings the UI cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.UI.LabelWidth <= 0:
		return fmt.Errorf("validate config: ui.label_width must be positive, got %d", c.UI.LabelWidth)
	case c.UI.ColumnWidth < 3:
		return fmt.Errorf("validate config: ui.column_width must be at least 3, got %d", c.UI.ColumnWidth)
	case c.UI.ChartHeight <= 0:
		return fmt.Errorf("validate config: ui.chart_height must be positive, got %d", c.UI.ChartHeight)
	case c.UI.SimilarNameDistance < 0:
		return fmt.Errorf("validate config: ui.similar_name_distance must not be negative, got %d", c.UI.SimilarNameDistance)
	case strings.TrimSpace(c.Export.Dir) == "":
		return errors.New("validate config: export.dir must be set")
	}
	return nil
}
