// Package speed implements playback-speed changes for synthesized audio.
//
// Adjust is the cheap path: it reinterprets the sample rate and leaves the
// samples untouched, shifting pitch along with tempo. Stretch resamples
// with linear interpolation so the nominal rate is preserved.
package speed

import (
	"errors"
	"fmt"
	"math"

	"github.com/murmurhq/voicedsp/dsp/core"
)

// Valid speed multiplier range, matching the synthesis request schema.
const (
	MinFactor = 0.5
	MaxFactor = 2.0
)

var (
	// ErrInvalidFactor indicates a speed multiplier outside [MinFactor, MaxFactor].
	ErrInvalidFactor = errors.New("speed: factor out of range")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("speed: invalid sample rate")
)

func checkFactor(factor float64) error {
	if math.IsNaN(factor) || factor < MinFactor || factor > MaxFactor {
		return fmt.Errorf("%w: %v (valid %v-%v)", ErrInvalidFactor, factor, MinFactor, MaxFactor)
	}
	return nil
}

// Adjust applies a speed change by reinterpreting the sample rate. The
// returned buffer is a fresh copy of data and the returned rate is
// sampleRate scaled by factor.
func Adjust(data []float64, sampleRate int, factor float64) ([]float64, int, error) {
	if sampleRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if err := checkFactor(factor); err != nil {
		return nil, 0, err
	}

	out := make([]float64, len(data))
	copy(out, data)

	if factor == 1 {
		return out, sampleRate, nil
	}
	return out, int(math.Round(float64(sampleRate) * factor)), nil
}

// Stretch applies a speed change by resampling with 2-point linear
// interpolation, preserving the nominal sample rate. factor > 1 shortens
// the output.
func Stretch(data []float64, factor float64) ([]float64, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []float64{}, nil
	}
	if factor == 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out, nil
	}

	n := int(math.Round(float64(len(data)) / factor))
	if n < 1 {
		n = 1
	}

	out := make([]float64, n)
	last := len(data) - 1
	for i := range out {
		pos := float64(i) * factor
		idx := int(pos)
		if idx >= last {
			out[i] = data[last]
			continue
		}
		frac := pos - float64(idx)
		out[i] = data[idx] + frac*(data[idx+1]-data[idx])
	}
	return out, nil
}

// StretchDuration returns the output duration in seconds of stretching
// data at sampleRate by factor.
func StretchDuration(data []float64, sampleRate, factor float64) (float64, error) {
	if sampleRate <= 0 || !core.Finite(sampleRate) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if err := checkFactor(factor); err != nil {
		return 0, err
	}
	return float64(len(data)) / sampleRate / factor, nil
}
