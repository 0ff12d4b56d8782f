package tts

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/murmurhq/voicedsp/dsp/segment"
)

// SynthesisRequest is the input handed to the model backend. Speed is not
// part of it: playback speed is applied by the assembly pipeline after
// synthesis.
type SynthesisRequest struct {
	Text    string
	VoiceID string
	// SamplePath is the reference audio for voice cloning, empty for
	// built-in voices.
	SamplePath string
}

// Synthesizer is the model backend collaborator. Implementations return
// one or more audio segments at the service sample rate.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([][]float64, error)
	Ready() bool
}

// DevSynthesizer is a model-free Synthesizer for local development and
// tests. It renders one short tone segment per word, with the base pitch
// derived from the voice ID so different voices are audibly distinct.
type DevSynthesizer struct {
	SampleRate float64
}

// Ready always reports true; there is no model to load.
func (s *DevSynthesizer) Ready() bool {
	return true
}

// Synthesize renders placeholder audio for req.Text.
func (s *DevSynthesizer) Synthesize(ctx context.Context, req SynthesisRequest) ([][]float64, error) {
	rate := s.SampleRate
	if rate <= 0 {
		rate = 24000
	}

	h := fnv.New32a()
	h.Write([]byte(req.VoiceID))
	pitch := 160 + float64(h.Sum32()%160)

	words := strings.Fields(req.Text)
	segments := make([][]float64, 0, len(words))
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := int(rate * (0.08 + 0.02*float64(len(word))))
		tone := make([]float64, n)
		step := 2 * math.Pi * pitch / rate
		for i := range tone {
			tone[i] = 0.4 * math.Sin(step*float64(i))
		}

		// Soften the segment edges so joins do not click even without
		// a crossfade.
		edge := n / 16
		tone, err := segment.FadeInSamples(tone, edge)
		if err != nil {
			return nil, err
		}
		tone, err = segment.FadeOutSamples(tone, edge)
		if err != nil {
			return nil, err
		}
		segments = append(segments, tone)
	}
	return segments, nil
}
