package synth

import (
	"fmt"
	"math/rand/v2"
)

// noiseStream mixes the seed into the PCG's second word so seed 0 still
// produces a non-degenerate stream.
const noiseStream = 0x9e3779b97f4a7c15

func noise(n int, amplitude float64, seed uint64, rate int) Buffer {
	rng := rand.New(rand.NewPCG(seed, seed^noiseStream))
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = Quantize(rng.NormFloat64() * amplitude)
	}
	return Buffer{Samples: samples, SampleRate: rate}
}

// Noise renders n samples of zero-mean Gaussian noise scaled by amplitude.
// The same seed always yields the same samples.
func Noise(n int, amplitude float64, seed uint64, rate int) (Buffer, error) {
	if n <= 0 {
		return Buffer{}, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidSpec, n)
	}
	if rate <= 0 {
		return Buffer{}, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidSpec, rate)
	}
	if amplitude <= 0 || amplitude > 1 {
		return Buffer{}, fmt.Errorf("%w: amplitude must be in (0, 1], got %g", ErrInvalidSpec, amplitude)
	}
	return noise(n, amplitude, seed, rate), nil
}
