package segment

import (
	"fmt"
	"math"
)

// FadeOut applies a linear 1-to-0 gain ramp over the trailing fadeSeconds
// of data and returns a new slice. A window longer than the buffer is
// clamped to the buffer length; fadeSeconds of zero returns an unchanged
// copy.
func FadeOut(data []float64, fadeSeconds, sampleRate float64) ([]float64, error) {
	n, err := fadeWindow(fadeSeconds, sampleRate)
	if err != nil {
		return nil, err
	}
	return FadeOutSamples(data, n)
}

// FadeIn applies a linear 0-to-1 gain ramp over the leading fadeSeconds of
// data and returns a new slice.
func FadeIn(data []float64, fadeSeconds, sampleRate float64) ([]float64, error) {
	n, err := fadeWindow(fadeSeconds, sampleRate)
	if err != nil {
		return nil, err
	}
	return FadeInSamples(data, n)
}

// FadeOutSamples applies a linear 1-to-0 gain ramp over the trailing n
// samples of data and returns a new slice.
func FadeOutSamples(data []float64, n int) ([]float64, error) {
	out, n, err := fadeCopy(data, n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return out, nil
	}

	base := len(out) - n
	den := float64(n - 1)
	for j := 0; j < n; j++ {
		out[base+j] *= 1 - float64(j)/den
	}
	return out, nil
}

// FadeInSamples applies a linear 0-to-1 gain ramp over the leading n
// samples of data and returns a new slice.
func FadeInSamples(data []float64, n int) ([]float64, error) {
	out, n, err := fadeCopy(data, n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return out, nil
	}

	den := float64(n - 1)
	for j := 0; j < n; j++ {
		out[j] *= float64(j) / den
	}
	return out, nil
}

func fadeWindow(fadeSeconds, sampleRate float64) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if fadeSeconds < 0 || math.IsNaN(fadeSeconds) {
		return 0, fmt.Errorf("%w: %v s", ErrInvalidFade, fadeSeconds)
	}
	return int(fadeSeconds * sampleRate), nil
}

func fadeCopy(data []float64, n int) ([]float64, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: %d samples", ErrInvalidFade, n)
	}
	if err := checkFinite(data); err != nil {
		return nil, 0, err
	}
	out := make([]float64, len(data))
	copy(out, data)
	if n > len(out) {
		n = len(out)
	}
	return out, n, nil
}
