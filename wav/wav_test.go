package wav

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := make([]float64, 480)
	for i := range in {
		in[i] = 0.8 * math.Sin(2*math.Pi*440*float64(i)/24000)
	}

	data, err := Encode(in, 24000)
	require.NoError(t, err)
	require.Len(t, data, headerSize+len(in)*2)

	out, rate, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 24000, rate)
	require.Len(t, out, len(in))

	for i := range in {
		assert.InDelta(t, in[i], out[i], 1.0/scale, "sample %d", i)
	}
}

func TestEncodeClampsOutOfRange(t *testing.T) {
	data, err := Encode([]float64{2.5, -3.0}, 8000)
	require.NoError(t, err)

	out, _, err := Decode(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0], 1e-9)
	assert.InDelta(t, -1.0, out[1], 1e-9)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode(nil, 24000)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Encode([]float64{0.5}, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestDescribe(t *testing.T) {
	data, err := Encode(make([]float64, 12000), 24000)
	require.NoError(t, err)

	info, err := Describe(data)
	require.NoError(t, err)
	assert.Equal(t, 24000, info.SampleRate)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 16, info.BitsPerSample)
	assert.Equal(t, 12000, info.NumSamples)
	assert.InDelta(t, 0.5, info.Duration, 1e-9)
}

func TestDuration(t *testing.T) {
	data, err := Encode(make([]float64, 24000), 24000)
	require.NoError(t, err)

	d, err := Duration(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		data func() []byte
	}{
		{name: "too short", data: func() []byte { return []byte("RIFF") }},
		{name: "wrong magic", data: func() []byte {
			d, _ := Encode([]float64{0.5}, 8000)
			copy(d[0:4], "JUNK")
			return d
		}},
		{name: "stereo", data: func() []byte {
			d, _ := Encode([]float64{0.5}, 8000)
			d[22] = 2
			return d
		}},
		{name: "8 bit", data: func() []byte {
			d, _ := Encode([]float64{0.5}, 8000)
			d[34] = 8
			return d
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode(tc.data())
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error = %v, want ErrMalformed", err)
			}
		})
	}
}
