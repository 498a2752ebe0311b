// Package config loads the tablero configuration via viper: a .tablero
// config file discovered from the working directory, with TABLERO_ env
// overrides.
package config

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the resolved settings.
type Config struct {
	// URL is the bulk-data gateway endpoint.
	URL string
	// Path is the base path of the durable profile store.
	Path string
}

// Load reads the configuration. A missing config file is fine; defaults and
// environment variables still apply.
func Load() (*Config, error) {
	viper.SetDefault("path", "~/.tablero.db")
	viper.SetDefault("url", "")
	viper.SetConfigName(".tablero") // .yaml is implicit
	viper.SetEnvPrefix("TABLERO")
	viper.AutomaticEnv()

	if override := os.Getenv("TABLERO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand store path: %w", err)
	}

	return &Config{
		URL:  viper.GetString("url"),
		Path: path,
	}, nil
}
