package synth

import (
	"fmt"
	"time"
)

// Overlay mixes b onto a by sample-wise addition. The result always has
// a's length: b is truncated, or treated as silence past its end. Sums are
// saturated to the int16 range.
func Overlay(a, b Buffer) (Buffer, error) {
	if a.SampleRate != b.SampleRate {
		return Buffer{}, fmt.Errorf("%w: overlay %d Hz onto %d Hz", ErrSampleRateMismatch, b.SampleRate, a.SampleRate)
	}

	out := make([]int16, len(a.Samples))
	copy(out, a.Samples)
	for i := range min(len(a.Samples), len(b.Samples)) {
		out[i] = saturate(float64(int32(a.Samples[i]) + int32(b.Samples[i])))
	}
	return Buffer{Samples: out, SampleRate: a.SampleRate}, nil
}

// Concat places buffers end to end. All buffers must share a sample rate.
func Concat(bufs ...Buffer) (Buffer, error) {
	if len(bufs) == 0 {
		return Buffer{}, nil
	}

	rate := bufs[0].SampleRate
	total := 0
	for _, b := range bufs {
		if b.SampleRate != rate {
			return Buffer{}, fmt.Errorf("%w: concat %d Hz after %d Hz", ErrSampleRateMismatch, b.SampleRate, rate)
		}
		total += len(b.Samples)
	}

	out := make([]int16, 0, total)
	for _, b := range bufs {
		out = append(out, b.Samples...)
	}
	return Buffer{Samples: out, SampleRate: rate}, nil
}

// Silence returns a zeroed buffer of duration d.
func Silence(d time.Duration, rate int) (Buffer, error) {
	if rate <= 0 {
		return Buffer{}, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidSpec, rate)
	}
	if d < 0 {
		return Buffer{}, fmt.Errorf("%w: silence duration must not be negative, got %s", ErrInvalidSpec, d)
	}
	return Buffer{Samples: make([]int16, SampleCount(d, rate)), SampleRate: rate}, nil
}
