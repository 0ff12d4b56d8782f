// Command voiced runs the speech synthesis HTTP service.
//
// Without a model backend compiled in it serves placeholder audio from
// the development synthesizer, which is enough to exercise clients and
// the assembly pipeline end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/murmurhq/voicedsp/internal/config"
	"github.com/murmurhq/voicedsp/tts"
	"github.com/murmurhq/voicedsp/voice"
)

const (
	serviceName    = "voiced"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Logging)
	logger.Info("service starting",
		slog.String("service", serviceName),
		slog.String("version", serviceVersion),
		slog.Int("sample_rate", cfg.Audio.SampleRate),
		slog.Int("crossfade_samples", cfg.CrossfadeSamples()),
	)

	library := loadLibrary(cfg, logger)
	metrics := tts.NewMetrics()

	svc := tts.NewService(
		&tts.DevSynthesizer{SampleRate: float64(cfg.Audio.SampleRate)},
		library,
		tts.Options{
			SampleRate:     cfg.Audio.SampleRate,
			Crossfade:      cfg.CrossfadeSamples(),
			NormalizePeak:  cfg.Audio.NormalizePeak,
			FadeOutSeconds: cfg.Audio.FadeOutSeconds,
		},
		logger,
		metrics,
	)

	server := tts.NewServer(tts.ServerOptions{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}, svc, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

// loadLibrary resolves the voice sample directory and loads its manifest,
// falling back to the built-in catalog when no library is found.
func loadLibrary(cfg *config.Config, logger *slog.Logger) *voice.Library {
	dir := voice.ResolveDir(cfg.Voices.Dir)
	if dir == "" {
		logger.Info("no voice library directory, using built-in catalog")
		return voice.NewLibrary("", voice.DefaultCatalog())
	}

	library, err := voice.Open(dir)
	if err != nil {
		logger.Warn("failed to load voice library, using built-in catalog",
			slog.String("dir", dir),
			slog.String("error", err.Error()),
		)
		return voice.NewLibrary("", voice.DefaultCatalog())
	}

	logger.Info("voice library loaded",
		slog.String("dir", dir),
		slog.Int("voices", library.Len()),
	)
	return library
}

func initLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
