package synth

import (
	"math"
	"time"
)

// Buffer is a mono 16-bit PCM sample sequence.
type Buffer struct {
	Samples    []int16
	SampleRate int
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Duration returns the playing time of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// SampleCount returns round(d * rate), the sample length of a buffer of duration d.
func SampleCount(d time.Duration, rate int) int {
	if d <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(rate)))
}

// windowLen converts a millisecond window to samples, clamped to [0, limit].
func windowLen(d time.Duration, rate, limit int) int {
	return min(SampleCount(d, rate), limit)
}

// Quantize maps a sample in [-1, 1] to int16 by round(x * 32767),
// saturating anything outside the range.
func Quantize(x float64) int16 {
	return saturate(math.Round(x * math.MaxInt16))
}

func saturate(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
