package synth

import (
	"math"
	"time"
)

// periodic evaluates one of the four periodic kinds at each sample index.
// Every sample depends only on its index.
func periodic(s Spec, n int) Buffer {
	samples := make([]int16, n)
	rate := float64(s.SampleRate)
	shape := shapeFor(s.Kind)

	for i := range samples {
		_, pos := math.Modf(s.Frequency * float64(i) / rate)
		samples[i] = Quantize(s.Amplitude * shape(pos))
	}
	return Buffer{Samples: samples, SampleRate: s.SampleRate}
}

// shapeFor returns the unit-amplitude waveform as a function of cycle
// position p in [0, 1).
func shapeFor(k Kind) func(p float64) float64 {
	switch k {
	case KindSquare:
		return func(p float64) float64 {
			if p < 0.5 {
				return 1
			}
			return -1
		}
	case KindSawtooth:
		return func(p float64) float64 { return 2*p - 1 }
	case KindTriangle:
		return func(p float64) float64 {
			if p < 0.5 {
				return 4*p - 1
			}
			return 3 - 4*p
		}
	default:
		return func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	}
}

func tone(kind Kind, freq float64, d time.Duration) (Buffer, error) {
	return Generate(Spec{
		Kind:       kind,
		Frequency:  freq,
		Duration:   d,
		Amplitude:  1,
		SampleRate: DefaultSampleRate,
	})
}

// Sine renders a full-scale sine at DefaultSampleRate.
func Sine(freq float64, d time.Duration) (Buffer, error) { return tone(KindSine, freq, d) }

// Square renders a full-scale square wave at DefaultSampleRate.
func Square(freq float64, d time.Duration) (Buffer, error) { return tone(KindSquare, freq, d) }

// Sawtooth renders a full-scale rising sawtooth at DefaultSampleRate.
func Sawtooth(freq float64, d time.Duration) (Buffer, error) { return tone(KindSawtooth, freq, d) }

// Triangle renders a full-scale triangle wave at DefaultSampleRate.
func Triangle(freq float64, d time.Duration) (Buffer, error) { return tone(KindTriangle, freq, d) }
