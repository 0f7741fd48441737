// Package config provides configuration types for the demo tool server
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// UpstreamTimeout bounds every outbound call to a third-party data source.
// There are no retries; on expiry the handler serves fallback data instead.
const UpstreamTimeout = 5 * time.Second

// Config holds the tool server configuration
type Config struct {
	// Address is the listen address for the HTTP front
	Address string `mapstructure:"address"`
	// DocsDir is the only directory the file tool is allowed to read from
	DocsDir string `mapstructure:"docsDir"`
	// StaticDir holds the demo frontend assets served under /static
	StaticDir string `mapstructure:"staticDir"`
	// WeatherBaseURL is the open-meteo endpoint; tests point it at a local server
	WeatherBaseURL string `mapstructure:"weatherBaseURL"`
	// CryptoBaseURL is the coingecko endpoint
	CryptoBaseURL string `mapstructure:"cryptoBaseURL"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Address:        "127.0.0.1:8000",
		DocsDir:        "./resources/docs",
		StaticDir:      "./static",
		WeatherBaseURL: "https://api.open-meteo.com",
		CryptoBaseURL:  "https://api.coingecko.com",
	}
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("address", defaults.Address)
	v.SetDefault("docsDir", defaults.DocsDir)
	v.SetDefault("staticDir", defaults.StaticDir)
	v.SetDefault("weatherBaseURL", defaults.WeatherBaseURL)
	v.SetDefault("cryptoBaseURL", defaults.CryptoBaseURL)
}

// Load reads the config file at path into cfg using the shared viper
// instance, so that viper.WatchConfig in main picks up later edits.
// Unset keys fall back to the defaults.
func Load(path string, cfg *Config, logger *slog.Logger) error {
	viper.SetConfigFile(path)
	setDefaults(viper.GetViper())
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	logger.Debug(
		"config loaded",
		"path", viper.ConfigFileUsed(),
		"address", cfg.Address,
		"docsDir", cfg.DocsDir,
		"staticDir", cfg.StaticDir,
	)
	return nil
}
