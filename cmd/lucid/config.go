package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI configuration.
type Config struct {
	Format string
	Log    LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix LUCID_.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("format", "yaml")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("LUCID_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lucid"))
		v.AddConfigPath(".")
		v.SetConfigName("lucid")
	}

	v.SetEnvPrefix("LUCID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
