package voice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, rate, amp float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = amp * math.Sin(step*float64(i))
	}
	return out
}

func TestProbeSampleSine(t *testing.T) {
	const rate = 24000.0
	stats, err := ProbeSample(sine(440, rate, 0.5, 4096), rate)
	require.NoError(t, err)

	assert.Equal(t, 4096, stats.Length)
	assert.InDelta(t, 4096.0/rate, stats.Duration, 1e-9)
	assert.InDelta(t, 0.5, stats.Peak, 1e-3)
	// Sine RMS is amplitude / sqrt(2).
	assert.InDelta(t, 0.5/math.Sqrt2, stats.RMS, 1e-3)
	assert.InDelta(t, 440, stats.DominantHz, rate/4096)
	assert.Zero(t, stats.ClipRatio)
	assert.False(t, stats.LikelySilent)
}

func TestProbeSampleClipping(t *testing.T) {
	data := sine(200, 8000, 2.0, 2000)
	for i, v := range data {
		if v > 1 {
			data[i] = 1
		} else if v < -1 {
			data[i] = -1
		}
	}

	stats, err := ProbeSample(data, 8000)
	require.NoError(t, err)
	assert.Greater(t, stats.ClipRatio, 0.1)
}

func TestProbeSampleSilence(t *testing.T) {
	stats, err := ProbeSample(make([]float64, 1000), 8000)
	require.NoError(t, err)
	assert.True(t, stats.LikelySilent)
	assert.Zero(t, stats.DominantHz)
	assert.True(t, math.IsInf(stats.PeakDB, -1))
}

func TestProbeSampleEmpty(t *testing.T) {
	stats, err := ProbeSample(nil, 24000)
	require.NoError(t, err)
	assert.True(t, stats.LikelySilent)
	assert.Zero(t, stats.Length)
}

func TestProbeSampleRejectsBadRate(t *testing.T) {
	_, err := ProbeSample([]float64{0.1}, 0)
	assert.Error(t, err)
}
