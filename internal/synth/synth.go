// Package synth renders mono 16-bit PCM buffers: periodic waveforms, linear
// chirps, seeded noise, and the overlay, concatenation and fade operators
// used to compose them.
package synth

import (
	"errors"
	"fmt"
	"time"
)

// DefaultSampleRate is the rate every catalog artifact is rendered at.
const DefaultSampleRate = 44100

var (
	// ErrInvalidSpec is returned for waveform parameters that cannot be synthesized.
	ErrInvalidSpec = errors.New("invalid waveform spec")
	// ErrSampleRateMismatch is returned when combining buffers of different rates.
	ErrSampleRateMismatch = errors.New("sample rate mismatch")
)

// Kind names a waveform generator.
type Kind string

const (
	KindSine     Kind = "sine"
	KindSquare   Kind = "square"
	KindSawtooth Kind = "sawtooth"
	KindTriangle Kind = "triangle"
	KindChirp    Kind = "chirp"
	KindNoise    Kind = "noise"
)

// Periodic reports whether k is one of the four periodic waveforms.
func (k Kind) Periodic() bool {
	switch k {
	case KindSine, KindSquare, KindSawtooth, KindTriangle:
		return true
	}
	return false
}

// Spec describes one waveform. Amplitude is a linear fraction of full scale.
// FrequencyEnd is only read for chirps and Seed only for noise.
type Spec struct {
	Kind         Kind
	Frequency    float64
	FrequencyEnd float64
	Duration     time.Duration
	Amplitude    float64
	SampleRate   int
	Seed         uint64
}

// Validate rejects parameters that cannot be synthesized.
func (s Spec) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidSpec, s.SampleRate)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidSpec, s.Duration)
	}
	if s.Amplitude <= 0 || s.Amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in (0, 1], got %g", ErrInvalidSpec, s.Amplitude)
	}

	nyquist := float64(s.SampleRate) / 2
	checkFreq := func(label string, f float64) error {
		if f <= 0 || f >= nyquist {
			return fmt.Errorf("%w: %s %g Hz outside (0, %g) for rate %d", ErrInvalidSpec, label, f, nyquist, s.SampleRate)
		}
		return nil
	}

	switch {
	case s.Kind.Periodic():
		return checkFreq("frequency", s.Frequency)
	case s.Kind == KindChirp:
		if err := checkFreq("start frequency", s.Frequency); err != nil {
			return err
		}
		return checkFreq("end frequency", s.FrequencyEnd)
	case s.Kind == KindNoise:
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, s.Kind)
	}
}

// Generate renders s into a buffer of SampleCount(Duration, SampleRate) samples.
func Generate(s Spec) (Buffer, error) {
	if err := s.Validate(); err != nil {
		return Buffer{}, err
	}

	n := SampleCount(s.Duration, s.SampleRate)
	switch s.Kind {
	case KindChirp:
		return chirp(s, n), nil
	case KindNoise:
		return noise(n, s.Amplitude, s.Seed, s.SampleRate), nil
	default:
		return periodic(s, n), nil
	}
}
