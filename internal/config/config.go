package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	History  HistoryConfig  `mapstructure:"history"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
	DetailHeight int    `mapstructure:"detail_height"`
}

type AnalysisConfig struct {
	Model      string `mapstructure:"model"`
	RecordCap  int    `mapstructure:"record_cap"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
			DetailHeight: 14,
		},
		Analysis: AnalysisConfig{
			Model:      "gemini-2.5-flash",
			RecordCap:  20,
			TimeoutSec: 60,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 500,
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config paths in priority order: user config dir, cwd, ./config
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "vallas"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.detail_height", 14)
	v.SetDefault("analysis.model", "gemini-2.5-flash")
	v.SetDefault("analysis.record_cap", 20)
	v.SetDefault("analysis.timeout_sec", 60)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 500)

	// Missing config file is fine, defaults apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "vallas"), nil
}
