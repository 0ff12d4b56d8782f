package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, rate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

func TestMagnitudeBinCount(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want int
	}{
		{name: "power of two", n: 1024, want: 513},
		{name: "padded", n: 1000, want: 513},
		{name: "tiny", n: 3, want: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mag, err := Magnitude(make([]float64, tc.n))
			if err != nil {
				t.Fatalf("Magnitude() error = %v", err)
			}
			if len(mag) != tc.want {
				t.Fatalf("bins = %d, want %d", len(mag), tc.want)
			}
		})
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if _, err := Magnitude(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestDominantFrequencySine(t *testing.T) {
	const rate = 24000.0
	for _, freq := range []float64{375, 750, 1500, 3000} {
		got, err := DominantFrequency(sine(freq, rate, 4096), rate)
		if err != nil {
			t.Fatalf("DominantFrequency() error = %v", err)
		}
		// Bin resolution at 4096 samples is rate/4096 Hz.
		if math.Abs(got-freq) > rate/4096 {
			t.Fatalf("freq = %v, want about %v", got, freq)
		}
	}
}

func TestDominantFrequencyRejectsBadRate(t *testing.T) {
	if _, err := DominantFrequency([]float64{1, 2}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
}
