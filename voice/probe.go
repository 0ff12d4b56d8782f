package voice

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/murmurhq/voicedsp/dsp/core"
	"github.com/murmurhq/voicedsp/dsp/segment"
	"github.com/murmurhq/voicedsp/dsp/spectrum"
)

// clipThreshold marks samples considered clipped in a reference
// recording. Slightly below full scale to catch limiter-flattened peaks.
const clipThreshold = 0.999

// SampleStats summarizes a voice reference sample for quality vetting.
type SampleStats struct {
	Length       int     `json:"length"`
	Duration     float64 `json:"duration_seconds"`
	RMS          float64 `json:"rms"`
	Peak         float64 `json:"peak"`
	PeakDB       float64 `json:"peak_db"`
	ClipRatio    float64 `json:"clip_ratio"`
	DominantHz   float64 `json:"dominant_hz"`
	LikelySilent bool    `json:"likely_silent"`
}

// ProbeSample computes quality statistics for a cloned-voice reference
// sample.
func ProbeSample(data []float64, sampleRate float64) (SampleStats, error) {
	duration, err := segment.Duration(data, sampleRate)
	if err != nil {
		return SampleStats{}, err
	}

	stats := SampleStats{
		Length:   len(data),
		Duration: duration,
	}
	if len(data) == 0 {
		stats.PeakDB = math.Inf(-1)
		stats.LikelySilent = true
		return stats, nil
	}

	stats.RMS = math.Sqrt(vecmath.DotProduct(data, data) / float64(len(data)))
	stats.Peak = vecmath.MaxAbs(data)
	stats.PeakDB = core.LinearToDB(stats.Peak)

	clipped := 0
	for _, v := range data {
		if math.Abs(v) >= clipThreshold {
			clipped++
		}
	}
	stats.ClipRatio = float64(clipped) / float64(len(data))

	// -60 dBFS RMS is indistinguishable from room noise for cloning.
	stats.LikelySilent = stats.RMS < core.DBToLinear(-60)

	if !stats.LikelySilent {
		hz, err := spectrum.DominantFrequency(data, sampleRate)
		if err != nil {
			return SampleStats{}, err
		}
		stats.DominantHz = hz
	}
	return stats, nil
}
