package synth

import (
	"math"
	"time"
)

// chirp renders a linear sweep from s.Frequency to s.FrequencyEnd.
//
// The instantaneous frequency f(t) = f0 + (f1-f0)*t/T is integrated to get
// the phase 2π(f0*t + (f1-f0)*t²/(2T)). Evaluating sin(2π f(t) t) instead
// doubles the sweep rate and is not a valid chirp.
func chirp(s Spec, n int) Buffer {
	samples := make([]int16, n)
	rate := float64(s.SampleRate)
	f0, f1 := s.Frequency, s.FrequencyEnd
	total := s.Duration.Seconds()
	slope := (f1 - f0) / (2 * total)

	for i := range samples {
		t := float64(i) / rate
		phase := 2 * math.Pi * (f0*t + slope*t*t)
		samples[i] = Quantize(s.Amplitude * math.Sin(phase))
	}
	return Buffer{Samples: samples, SampleRate: s.SampleRate}
}

// Chirp renders a full-scale linear frequency sweep from f0 to f1 Hz.
func Chirp(f0, f1 float64, d time.Duration, rate int) (Buffer, error) {
	return Generate(Spec{
		Kind:         KindChirp,
		Frequency:    f0,
		FrequencyEnd: f1,
		Duration:     d,
		Amplitude:    1,
		SampleRate:   rate,
	})
}

// InstantFrequency returns the sweep frequency of a linear chirp at time t.
func InstantFrequency(f0, f1 float64, d, t time.Duration) float64 {
	return f0 + (f1-f0)*t.Seconds()/d.Seconds()
}
