// Package wav encodes and decodes 16-bit PCM mono WAV data at the
// []float64 sample boundary used by the DSP packages.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/murmurhq/voicedsp/dsp/core"
)

const (
	headerSize = 44
	pcmFormat  = 1
	scale      = 32767.0
)

var (
	// ErrEmptyInput indicates an empty sample buffer.
	ErrEmptyInput = errors.New("wav: empty input")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("wav: invalid sample rate")
	// ErrMalformed indicates data that is not a supported WAV stream.
	ErrMalformed = errors.New("wav: malformed data")
)

// header is the canonical 44-byte RIFF/WAVE PCM header.
type header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// Encode converts float64 samples to a mono 16-bit PCM WAV byte stream.
// Samples are clamped to [-1, 1] before quantization.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = int16(core.Clamp(v, -1, 1) * scale)
	}

	dataSize := uint32(len(pcm) * 2)
	h := header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   pcmFormat,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)*2))
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("wav: failed to write header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, pcm); err != nil {
		return nil, fmt.Errorf("wav: failed to write sample data: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode converts a mono 16-bit PCM WAV byte stream back to float64
// samples in [-1, 1] and returns the sample rate.
func Decode(data []byte) ([]float64, int, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	numSamples := int(h.Subchunk2Size) / 2
	if numSamples <= 0 {
		return nil, 0, fmt.Errorf("%w: no audio data", ErrMalformed)
	}
	if headerSize+numSamples*2 > len(data) {
		return nil, 0, fmt.Errorf("%w: truncated data chunk", ErrMalformed)
	}

	pcm := make([]int16, numSamples)
	r := bytes.NewReader(data[headerSize:])
	if err := binary.Read(r, binary.LittleEndian, pcm); err != nil {
		return nil, 0, fmt.Errorf("wav: failed to read sample data: %w", err)
	}

	samples := make([]float64, numSamples)
	for i, v := range pcm {
		samples[i] = float64(v) / scale
	}
	return samples, int(h.SampleRate), nil
}

// Info describes a WAV stream without decoding its samples.
type Info struct {
	SampleRate    int     `json:"sample_rate"`
	Channels      int     `json:"channels"`
	BitsPerSample int     `json:"bits_per_sample"`
	NumSamples    int     `json:"num_samples"`
	Duration      float64 `json:"duration_seconds"`
}

// Describe extracts metadata from a WAV byte stream.
func Describe(data []byte) (Info, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Info{}, err
	}

	numSamples := int(h.Subchunk2Size) / (int(h.BitsPerSample) / 8)
	return Info{
		SampleRate:    int(h.SampleRate),
		Channels:      int(h.NumChannels),
		BitsPerSample: int(h.BitsPerSample),
		NumSamples:    numSamples,
		Duration:      float64(numSamples) / float64(h.SampleRate),
	}, nil
}

// Duration returns the playing time in seconds of a WAV byte stream.
func Duration(data []byte) (float64, error) {
	info, err := Describe(data)
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}

func parseHeader(data []byte) (header, error) {
	if len(data) < headerSize {
		return header{}, fmt.Errorf("%w: need at least %d bytes, got %d", ErrMalformed, headerSize, len(data))
	}

	var h header
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return header{}, fmt.Errorf("wav: failed to read header: %w", err)
	}

	switch {
	case string(h.ChunkID[:]) != "RIFF":
		return header{}, fmt.Errorf("%w: missing RIFF header", ErrMalformed)
	case string(h.Format[:]) != "WAVE":
		return header{}, fmt.Errorf("%w: missing WAVE format", ErrMalformed)
	case string(h.Subchunk1ID[:]) != "fmt ":
		return header{}, fmt.Errorf("%w: missing fmt chunk", ErrMalformed)
	case string(h.Subchunk2ID[:]) != "data":
		return header{}, fmt.Errorf("%w: missing data chunk", ErrMalformed)
	case h.AudioFormat != pcmFormat:
		return header{}, fmt.Errorf("%w: unsupported audio format %d", ErrMalformed, h.AudioFormat)
	case h.BitsPerSample != 16:
		return header{}, fmt.Errorf("%w: unsupported bit depth %d", ErrMalformed, h.BitsPerSample)
	case h.NumChannels != 1:
		return header{}, fmt.Errorf("%w: unsupported channel count %d", ErrMalformed, h.NumChannels)
	case h.SampleRate == 0:
		return header{}, fmt.Errorf("%w: zero sample rate", ErrMalformed)
	}
	return h, nil
}
