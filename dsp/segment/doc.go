// Package segment assembles synthesized audio segments into a single
// playable buffer: peak normalization with a fixed headroom target,
// duration computation, linear-crossfade concatenation, and edge fades.
//
// All functions treat their inputs as immutable and return freshly
// allocated slices; buffers are raw []float64 mono sample data.
//
// Common workflow:
//   - Concat(segments, crossfade)
//   - Normalize(combined)
//   - FadeOut(combined, fadeSeconds, sampleRate)
package segment
