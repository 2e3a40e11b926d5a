package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseDeterministic(t *testing.T) {
	a, err := Noise(4096, 0.1, 42, DefaultSampleRate)
	require.NoError(t, err)
	b, err := Noise(4096, 0.1, 42, DefaultSampleRate)
	require.NoError(t, err)
	c, err := Noise(4096, 0.1, 43, DefaultSampleRate)
	require.NoError(t, err)

	assert.Equal(t, a.Samples, b.Samples)
	assert.NotEqual(t, a.Samples, c.Samples)
}

func TestNoiseStatistics(t *testing.T) {
	buf, err := Noise(2*DefaultSampleRate, 0.1, 7, DefaultSampleRate)
	require.NoError(t, err)
	require.Equal(t, 88200, buf.Len())

	var sum, sq float64
	for _, v := range buf.Samples {
		sum += float64(v)
		sq += float64(v) * float64(v)
	}
	n := float64(buf.Len())
	mean := sum / n
	std := math.Sqrt(sq/n - mean*mean)

	want := 0.1 * math.MaxInt16
	assert.InDelta(t, 0, mean, want*0.02)
	assert.InDelta(t, want, std, want*0.05)
}

func TestNoiseValidation(t *testing.T) {
	_, err := Noise(0, 0.1, 1, DefaultSampleRate)
	require.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Noise(100, 0, 1, DefaultSampleRate)
	require.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Noise(100, 0.1, 1, 0)
	require.ErrorIs(t, err, ErrInvalidSpec)
}
