// Package config loads and validates the voiced service configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/murmurhq/voicedsp/dsp/core"
	"github.com/murmurhq/voicedsp/dsp/segment"
)

// Config represents the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Audio   AudioConfig   `yaml:"audio"`
	Voices  VoicesConfig  `yaml:"voices"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains the HTTP API server configuration.
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
}

// AudioConfig contains the segment-assembly pipeline parameters.
type AudioConfig struct {
	SampleRate     int     `yaml:"sample_rate"`
	CrossfadeMs    int     `yaml:"crossfade_ms"`
	NormalizePeak  float64 `yaml:"normalize_peak"` // 0 disables normalization
	FadeOutSeconds float64 `yaml:"fade_out_seconds"`
}

// VoicesConfig contains the voice library location.
type VoicesConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8787,
			ReadTimeout:  10,
			WriteTimeout: 120,
		},
		Audio: AudioConfig{
			SampleRate:     core.DefaultSampleRate,
			CrossfadeMs:    0,
			NormalizePeak:  segment.DefaultPeak,
			FadeOutSeconds: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and parses the configuration file, layering it over the
// defaults. The voice directory environment override is applied afterward.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read_timeout must be positive, got %d", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write_timeout must be positive, got %d", c.Server.WriteTimeout)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.CrossfadeMs < 0 {
		return fmt.Errorf("audio crossfade_ms must not be negative, got %d", c.Audio.CrossfadeMs)
	}
	if c.Audio.NormalizePeak < 0 || c.Audio.NormalizePeak > 1 {
		return fmt.Errorf("audio normalize_peak must be in [0, 1], got %v", c.Audio.NormalizePeak)
	}
	if c.Audio.FadeOutSeconds < 0 {
		return fmt.Errorf("audio fade_out_seconds must not be negative, got %v", c.Audio.FadeOutSeconds)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// CrossfadeSamples converts the configured crossfade window to samples.
func (c *Config) CrossfadeSamples() int {
	return c.Audio.CrossfadeMs * c.Audio.SampleRate / 1000
}
