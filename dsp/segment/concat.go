package segment

import "fmt"

// Concat joins buffers in order, blending each join with a linear
// crossfade of the given sample count. A join is blended only when both
// adjoining buffers are at least crossfade samples long; shorter joins
// degrade to plain appending. The result is always a new slice.
//
// With k blended joins the output length is sum(len) - crossfade*k.
func Concat(buffers [][]float64, crossfade int) ([]float64, error) {
	if crossfade < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCrossfade, crossfade)
	}

	total := 0
	for _, b := range buffers {
		if err := checkFinite(b); err != nil {
			return nil, err
		}
		total += len(b)
	}

	if len(buffers) == 0 {
		return []float64{}, nil
	}

	out := make([]float64, 0, total)
	out = append(out, buffers[0]...)

	for _, next := range buffers[1:] {
		if crossfade == 0 || len(out) < crossfade || len(next) < crossfade {
			out = append(out, next...)
			continue
		}

		n := float64(crossfade)
		base := len(out) - crossfade
		for j := 0; j < crossfade; j++ {
			fadeOut := (n - float64(j)) / n
			fadeIn := float64(j) / n
			out[base+j] = out[base+j]*fadeOut + next[j]*fadeIn
		}
		out = append(out, next[crossfade:]...)
	}

	return out, nil
}
