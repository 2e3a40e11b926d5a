package synth

import (
	"fmt"
	"math"
	"time"
)

// FadeIn ramps the first d of the buffer linearly from 0 to 1. A window
// longer than the buffer is clamped to the whole buffer.
func FadeIn(b Buffer, d time.Duration) (Buffer, error) {
	if d < 0 {
		return Buffer{}, fmt.Errorf("%w: fade duration must not be negative, got %s", ErrInvalidSpec, d)
	}

	out := b.clone()
	n := windowLen(d, b.SampleRate, len(out.Samples))
	for i := range n {
		out.Samples[i] = scale(out.Samples[i], float64(i)/float64(n))
	}
	return out, nil
}

// FadeOut ramps the last d of the buffer linearly from 1 to 0, ending on an
// exact zero. A window longer than the buffer is clamped to the whole buffer.
func FadeOut(b Buffer, d time.Duration) (Buffer, error) {
	if d < 0 {
		return Buffer{}, fmt.Errorf("%w: fade duration must not be negative, got %s", ErrInvalidSpec, d)
	}

	out := b.clone()
	n := windowLen(d, b.SampleRate, len(out.Samples))
	start := len(out.Samples) - n
	for i := range n {
		out.Samples[start+i] = scale(out.Samples[start+i], float64(n-1-i)/float64(n))
	}
	return out, nil
}

func scale(v int16, gain float64) int16 {
	return saturate(math.Round(float64(v) * gain))
}

func (b Buffer) clone() Buffer {
	out := make([]int16, len(b.Samples))
	copy(out, b.Samples)
	return Buffer{Samples: out, SampleRate: b.SampleRate}
}
