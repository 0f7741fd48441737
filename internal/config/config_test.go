package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-demo/toolserver/internal/config"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "127.0.0.1:8000", cfg.Address)
	require.Equal(t, "./resources/docs", cfg.DocsDir)
	require.Equal(t, "https://api.open-meteo.com", cfg.WeatherBaseURL)
	require.Equal(t, "https://api.coingecko.com", cfg.CryptoBaseURL)
}

func TestConfig_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("address: 0.0.0.0:9000\ndocsDir: /srv/docs\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Default()
	require.NoError(t, config.Load(path, cfg, logger))

	require.Equal(t, "0.0.0.0:9000", cfg.Address)
	require.Equal(t, "/srv/docs", cfg.DocsDir)
	// unset keys keep their defaults
	require.Equal(t, "./static", cfg.StaticDir)
	require.Equal(t, "https://api.open-meteo.com", cfg.WeatherBaseURL)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Default()
	err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg, logger)
	require.Error(t, err)
}
