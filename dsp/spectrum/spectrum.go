// Package spectrum provides the magnitude-spectrum analysis used to vet
// voice reference samples before they are offered for cloning.
package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput indicates an empty sample buffer.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
)

// Magnitude returns the single-sided magnitude spectrum of samples.
// The input is zero-padded to the next power of two; the result has
// fftSize/2+1 bins.
func Magnitude(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	n := nextPowerOf2(len(samples))
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// spectrum bin.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	mag, err := Magnitude(samples)
	if err != nil {
		return 0, err
	}

	if len(mag) < 2 {
		return 0, nil
	}
	fftSize := 2 * (len(mag) - 1)

	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	return float64(peak) * sampleRate / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
