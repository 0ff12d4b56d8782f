package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24000, cfg.Audio.SampleRate)
	assert.Equal(t, 8787, cfg.Server.Port)
	assert.InDelta(t, 0.95, cfg.Audio.NormalizePeak, 1e-12)
}

func TestLoadNoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voiced.yaml")
	body := `
server:
  host: 0.0.0.0
  port: 9000
audio:
  sample_rate: 48000
  crossfade_ms: 20
voices:
  dir: /srv/voices
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.Equal(t, "/srv/voices", cfg.Voices.Dir)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Untouched fields keep their defaults.
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "bad sample rate", mutate: func(c *Config) { c.Audio.SampleRate = -1 }},
		{name: "negative crossfade", mutate: func(c *Config) { c.Audio.CrossfadeMs = -5 }},
		{name: "peak above one", mutate: func(c *Config) { c.Audio.NormalizePeak = 1.5 }},
		{name: "negative fade", mutate: func(c *Config) { c.Audio.FadeOutSeconds = -0.1 }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "zero read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCrossfadeSamples(t *testing.T) {
	cfg := Default()
	cfg.Audio.CrossfadeMs = 10
	assert.Equal(t, 240, cfg.CrossfadeSamples())

	cfg.Audio.CrossfadeMs = 0
	assert.Zero(t, cfg.CrossfadeSamples())
}
