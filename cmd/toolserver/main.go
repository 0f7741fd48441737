// main implements the CLI for the HTTP tool server.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mcp-demo/toolserver/internal/config"
	"github.com/mcp-demo/toolserver/internal/tools"
	"github.com/mcp-demo/toolserver/internal/upstream"
)

var (
	cfg    = config.Default()
	mutex  sync.RWMutex
	logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
)

func main() {
	var (
		addressFlag string
		configFile  string
		loglevel    int
		logFormat   string
	)
	flag.StringVar(
		&addressFlag,
		"address",
		"",
		"listen address, overrides the config file",
	)
	flag.StringVar(
		&configFile,
		"config",
		"./config/config.yaml",
		"where to locate the tool server config",
	)
	flag.IntVar(
		&loglevel,
		"log-level",
		int(slog.LevelInfo),
		"set the log level 0=info, 4=warn, 8=error and -4=debug",
	)
	flag.StringVar(&logFormat, "log-format", "txt", "switch to json logs with --log-format=json")
	flag.Parse()

	slog.SetLogLoggerLevel(slog.Level(loglevel))
	if logFormat == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	// .env is optional; it carries nothing beyond local overrides
	_ = godotenv.Load()

	if _, err := os.Stat(configFile); err == nil {
		if err := config.Load(configFile, cfg, logger); err != nil {
			log.Fatalf("Error loading config: %s", err)
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(in fsnotify.Event) {
			logger.Info("tool server config changed", "config file", in.Name)
			mutex.Lock()
			defer mutex.Unlock()
			if err := config.Load(configFile, cfg, logger); err != nil {
				logger.Warn("could not reload config", "error", err)
			}
		})
	} else {
		logger.Info("no config file found, using defaults", "path", configFile)
	}
	if addressFlag != "" {
		cfg.Address = addressFlag
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	toolServer := tools.NewServer(
		cfg,
		upstream.NewWeatherClient(cfg.WeatherBaseURL, logger),
		upstream.NewCryptoClient(cfg.CryptoBaseURL, logger),
		logger,
	)
	httpSrv := &http.Server{
		Addr:         cfg.Address,
		Handler:      toolServer.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("[http] starting tool server", "listening", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[http] Cannot start tool server: %v", err)
		}
	}()

	<-stop
	logger.Info("shutting down tool server")
	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP shutdown error: %v", err)
	}
}
