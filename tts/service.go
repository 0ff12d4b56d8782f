// Package tts assembles synthesized speech into playable WAV audio and
// serves it over an HTTP API.
package tts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/murmurhq/voicedsp/dsp/segment"
	"github.com/murmurhq/voicedsp/dsp/speed"
	"github.com/murmurhq/voicedsp/voice"
	"github.com/murmurhq/voicedsp/wav"
)

var (
	// ErrEmptyText indicates a request without any text to synthesize.
	ErrEmptyText = errors.New("tts: text must not be empty")
	// ErrNotReady indicates the synthesis backend is not loaded.
	ErrNotReady = errors.New("tts: synthesizer not ready")
	// ErrNoAudio indicates the backend produced no audio for the text.
	ErrNoAudio = errors.New("tts: synthesizer produced no audio")
)

// Options configures the assembly pipeline.
type Options struct {
	// SampleRate of the synthesis backend output in Hz.
	SampleRate int
	// Crossfade is the blend window in samples applied at segment joins.
	Crossfade int
	// NormalizePeak is the peak target applied after assembly; zero
	// disables normalization.
	NormalizePeak float64
	// FadeOutSeconds is the trailing fade window; zero disables it.
	FadeOutSeconds float64
}

// Request is a synthesis request from a client.
type Request struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}

// Result is the finished synthesis response.
type Result struct {
	Audio             string  `json:"audio"` // base64-encoded WAV
	Format            string  `json:"format"`
	Voice             string  `json:"voice"`
	SampleRate        int     `json:"sample_rate"`
	DurationSeconds   float64 `json:"duration_seconds"`
	GenerationSeconds float64 `json:"generation_seconds"`
	RealTimeFactor    float64 `json:"real_time_factor"`
}

// Service turns synthesis requests into encoded audio.
type Service struct {
	synth   Synthesizer
	library *voice.Library
	opts    Options
	logger  *slog.Logger
	metrics *Metrics
}

// NewService creates a Service. metrics may be nil to disable reporting.
func NewService(synth Synthesizer, library *voice.Library, opts Options, logger *slog.Logger, metrics *Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 24000
	}
	return &Service{
		synth:   synth,
		library: library,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// Library returns the voice library backing the service.
func (s *Service) Library() *voice.Library {
	return s.library
}

// Ready reports whether the synthesis backend can serve requests.
func (s *Service) Ready() bool {
	return s.synth.Ready()
}

// SampleRate returns the backend output rate in Hz.
func (s *Service) SampleRate() int {
	return s.opts.SampleRate
}

// Generate runs the full pipeline: synthesize segments, concatenate with
// crossfade, normalize, fade out, apply speed, and encode to base64 WAV.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if !s.synth.Ready() {
		return nil, ErrNotReady
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	factor := req.Speed
	if factor == 0 {
		factor = 1.0
	}
	if factor < speed.MinFactor || factor > speed.MaxFactor {
		return nil, fmt.Errorf("%w: %v", speed.ErrInvalidFactor, factor)
	}

	voiceID := s.resolveVoice(req.Voice)
	samplePath, err := s.library.SamplePath(voiceID)
	if err != nil {
		// Built-in voices have no reference sample.
		samplePath = ""
	}

	requestID := uuid.NewString()
	s.logger.Info("generating speech",
		slog.String("request_id", requestID),
		slog.String("voice", voiceID),
		slog.Float64("speed", factor),
		slog.Int("text_len", len(req.Text)),
	)

	start := time.Now()
	segments, err := s.synth.Synthesize(ctx, SynthesisRequest{
		Text:       req.Text,
		VoiceID:    voiceID,
		SamplePath: samplePath,
	})
	generation := time.Since(start).Seconds()
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("tts: synthesis failed: %w", err)
	}

	result, err := s.assemble(segments, voiceID, factor, generation)
	if err != nil {
		s.fail()
		return nil, err
	}

	s.logger.Info("generated audio",
		slog.String("request_id", requestID),
		slog.Float64("duration_s", result.DurationSeconds),
		slog.Float64("generation_s", result.GenerationSeconds),
		slog.Float64("real_time_factor", result.RealTimeFactor),
	)
	s.observe(result)
	return result, nil
}

func (s *Service) assemble(segments [][]float64, voiceID string, factor, generation float64) (*Result, error) {
	combined, err := segment.Concat(segments, s.opts.Crossfade)
	if err != nil {
		return nil, fmt.Errorf("tts: concatenation failed: %w", err)
	}
	if len(combined) == 0 {
		return nil, ErrNoAudio
	}

	if s.opts.NormalizePeak > 0 {
		combined, err = segment.NormalizeTo(combined, s.opts.NormalizePeak)
		if err != nil {
			return nil, fmt.Errorf("tts: normalization failed: %w", err)
		}
	}

	if s.opts.FadeOutSeconds > 0 {
		combined, err = segment.FadeOut(combined, s.opts.FadeOutSeconds, float64(s.opts.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("tts: fade failed: %w", err)
		}
	}

	out, outRate, err := speed.Adjust(combined, s.opts.SampleRate, factor)
	if err != nil {
		return nil, fmt.Errorf("tts: speed change failed: %w", err)
	}

	duration, err := segment.Duration(out, float64(outRate))
	if err != nil {
		return nil, fmt.Errorf("tts: duration failed: %w", err)
	}

	encoded, err := wav.Encode(out, outRate)
	if err != nil {
		return nil, fmt.Errorf("tts: WAV encoding failed: %w", err)
	}

	rtf := 0.0
	if duration > 0 {
		rtf = generation / duration
	}

	return &Result{
		Audio:             base64.StdEncoding.EncodeToString(encoded),
		Format:            "wav",
		Voice:             voiceID,
		SampleRate:        outRate,
		DurationSeconds:   duration,
		GenerationSeconds: generation,
		RealTimeFactor:    rtf,
	}, nil
}

// resolveVoice falls back to the default voice for unknown IDs, matching
// the permissive behavior clients depend on.
func (s *Service) resolveVoice(id string) string {
	if id == "" {
		return voice.DefaultVoiceID
	}
	if _, ok := s.library.Get(id); ok {
		return id
	}
	s.logger.Warn("unknown voice, using default",
		slog.String("requested", id),
		slog.String("fallback", voice.DefaultVoiceID),
	)
	return voice.DefaultVoiceID
}

func (s *Service) fail() {
	if s.metrics != nil {
		s.metrics.Requests.Inc()
		s.metrics.Failures.Inc()
	}
}

func (s *Service) observe(r *Result) {
	if s.metrics == nil {
		return
	}
	s.metrics.Requests.Inc()
	s.metrics.GenerationSeconds.Observe(r.GenerationSeconds)
	s.metrics.AudioSeconds.Add(r.DurationSeconds)
	s.metrics.RealTimeFactor.Observe(r.RealTimeFactor)
}
