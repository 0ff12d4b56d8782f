package segment

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/murmurhq/voicedsp/dsp/core"
)

// DefaultPeak is the normalization target. The 0.05 headroom below full
// scale avoids clipping on downstream playback and encoding.
const DefaultPeak = 0.95

var (
	// ErrNonFinite indicates a NaN or infinite input sample.
	ErrNonFinite = errors.New("segment: non-finite sample value")
	// ErrInvalidPeak indicates a non-positive normalization target.
	ErrInvalidPeak = errors.New("segment: invalid target peak")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("segment: invalid sample rate")
	// ErrInvalidCrossfade indicates a negative crossfade window.
	ErrInvalidCrossfade = errors.New("segment: invalid crossfade length")
	// ErrInvalidFade indicates a negative fade length.
	ErrInvalidFade = errors.New("segment: invalid fade length")
)

// checkFinite rejects NaN and infinite samples so they cannot silently
// corrupt crossfade blends further down the pipeline.
func checkFinite(data []float64) error {
	for i, v := range data {
		if !core.Finite(v) {
			return fmt.Errorf("%w at index %d: %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// Normalize scales data so its peak absolute value equals DefaultPeak and
// returns a new slice. Empty input yields an empty slice; an all-zero
// buffer is returned as an unchanged copy.
func Normalize(data []float64) ([]float64, error) {
	return NormalizeTo(data, DefaultPeak)
}

// NormalizeTo scales data to the given target peak amplitude and returns a
// new slice. targetPeak must be > 0.
func NormalizeTo(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak <= 0 || !core.Finite(targetPeak) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeak, targetPeak)
	}
	if len(data) == 0 {
		return []float64{}, nil
	}
	if err := checkFinite(data); err != nil {
		return nil, err
	}

	out := make([]float64, len(data))

	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 {
		copy(out, data)
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// Duration returns the elapsed seconds represented by data at sampleRate.
func Duration(data []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || !core.Finite(sampleRate) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return float64(len(data)) / sampleRate, nil
}

// Processor bundles segment operations with an explicit sample rate so
// callers do not have to thread the rate through every duration or fade
// call.
type Processor struct {
	cfg core.ProcessorConfig
}

// NewProcessor creates a Processor from the default config and options.
func NewProcessor(opts ...core.ProcessorOption) *Processor {
	return &Processor{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the processor configuration.
func (p *Processor) Config() core.ProcessorConfig {
	return p.cfg
}

// Duration returns the elapsed seconds of data at the configured rate.
func (p *Processor) Duration(data []float64) (float64, error) {
	return Duration(data, p.cfg.SampleRate)
}

// FadeOut applies a linear fade over the trailing fadeSeconds of data at
// the configured rate.
func (p *Processor) FadeOut(data []float64, fadeSeconds float64) ([]float64, error) {
	return FadeOut(data, fadeSeconds, p.cfg.SampleRate)
}

// FadeIn applies a linear fade over the leading fadeSeconds of data at the
// configured rate.
func (p *Processor) FadeIn(data []float64, fadeSeconds float64) ([]float64, error) {
	return FadeIn(data, fadeSeconds, p.cfg.SampleRate)
}
