// Package recipe describes the sample artifacts as data and renders each
// description into a PCM buffer.
package recipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/minicodemonkey/samplegen/internal/synth"
)

// ErrInvalidRecipe is returned for catalog entries that cannot be rendered.
var ErrInvalidRecipe = errors.New("invalid recipe")

// Tone is a single generated waveform.
type Tone struct {
	Kind         synth.Kind `yaml:"kind"`
	Frequency    float64    `yaml:"frequency,omitempty"`
	FrequencyEnd float64    `yaml:"frequency_end,omitempty"`
	DurationMS   int        `yaml:"duration_ms"`
	// Amplitude defaults to full scale when omitted.
	Amplitude *float64 `yaml:"amplitude,omitempty"`
}

// Spec converts the tone into a synth spec at the given rate.
func (t Tone) Spec(rate int, seed uint64) synth.Spec {
	amp := 1.0
	if t.Amplitude != nil {
		amp = *t.Amplitude
	}
	return synth.Spec{
		Kind:         t.Kind,
		Frequency:    t.Frequency,
		FrequencyEnd: t.FrequencyEnd,
		Duration:     ms(t.DurationMS),
		Amplitude:    amp,
		SampleRate:   rate,
		Seed:         seed,
	}
}

// Envelope is a linear fade applied after a sound is built.
type Envelope struct {
	FadeInMS  int `yaml:"fade_in_ms,omitempty"`
	FadeOutMS int `yaml:"fade_out_ms,omitempty"`
}

func (e Envelope) validate() error {
	if e.FadeInMS < 0 || e.FadeOutMS < 0 {
		return fmt.Errorf("fades must not be negative (in %d ms, out %d ms)", e.FadeInMS, e.FadeOutMS)
	}
	return nil
}

func (e Envelope) apply(buf synth.Buffer) (synth.Buffer, error) {
	buf, err := synth.FadeIn(buf, ms(e.FadeInMS))
	if err != nil {
		return synth.Buffer{}, err
	}
	return synth.FadeOut(buf, ms(e.FadeOutMS))
}

// Mix overlays every tone onto the first, then applies the envelope.
type Mix struct {
	Tones    []Tone `yaml:"tones"`
	Envelope `yaml:",inline"`
}

// Note is the template for each step of a Sequence. Its frequency is
// supplied by the sequence.
type Note struct {
	Tone     `yaml:",inline"`
	Envelope `yaml:",inline"`
}

// Sequence plays one note per frequency, each followed by GapMS of
// silence, after LeadMS of leading silence.
type Sequence struct {
	LeadMS      int       `yaml:"lead_ms,omitempty"`
	GapMS       int       `yaml:"gap_ms,omitempty"`
	Note        Note      `yaml:"note"`
	Frequencies []float64 `yaml:"frequencies"`
}

// Recipe is one named output artifact. Exactly one of Tone, Mix or
// Sequence is set.
type Recipe struct {
	Name     string    `yaml:"name"`
	Tone     *Tone     `yaml:"tone,omitempty"`
	Mix      *Mix      `yaml:"mix,omitempty"`
	Sequence *Sequence `yaml:"sequence,omitempty"`

	// SampleRate is filled in from the catalog.
	SampleRate int `yaml:"-"`
}

// Validate checks every parameter of the recipe without synthesizing it.
func (r Recipe) Validate() error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidRecipe, r.Name, err)
	}
	return nil
}

func (r Recipe) validate() error {
	set := 0
	for _, ok := range []bool{r.Tone != nil, r.Mix != nil, r.Sequence != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of tone, mix or sequence must be set, got %d", set)
	}

	switch {
	case r.Tone != nil:
		return r.Tone.Spec(r.SampleRate, 0).Validate()

	case r.Mix != nil:
		if len(r.Mix.Tones) == 0 {
			return errors.New("mix needs at least one tone")
		}
		for i, t := range r.Mix.Tones {
			if err := t.Spec(r.SampleRate, 0).Validate(); err != nil {
				return fmt.Errorf("tone %d: %w", i, err)
			}
		}
		return r.Mix.validate()

	default:
		seq := r.Sequence
		if len(seq.Frequencies) == 0 {
			return errors.New("sequence needs at least one frequency")
		}
		if seq.LeadMS < 0 || seq.GapMS < 0 {
			return fmt.Errorf("silences must not be negative (lead %d ms, gap %d ms)", seq.LeadMS, seq.GapMS)
		}
		for i, f := range seq.Frequencies {
			if err := seq.note(f).Spec(r.SampleRate, 0).Validate(); err != nil {
				return fmt.Errorf("note %d: %w", i, err)
			}
		}
		return seq.Note.validate()
	}
}

// Render builds the recipe's buffer. seed feeds any noise tones.
func (r Recipe) Render(seed uint64) (synth.Buffer, error) {
	if err := r.Validate(); err != nil {
		return synth.Buffer{}, err
	}

	var (
		buf synth.Buffer
		err error
	)
	switch {
	case r.Tone != nil:
		buf, err = synth.Generate(r.Tone.Spec(r.SampleRate, seed))
	case r.Mix != nil:
		buf, err = r.renderMix(seed)
	default:
		buf, err = r.renderSequence(seed)
	}
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("failed to render %s: %w", r.Name, err)
	}
	return buf, nil
}

func (r Recipe) renderMix(seed uint64) (synth.Buffer, error) {
	out, err := synth.Generate(r.Mix.Tones[0].Spec(r.SampleRate, seed))
	if err != nil {
		return synth.Buffer{}, err
	}
	for _, t := range r.Mix.Tones[1:] {
		layer, err := synth.Generate(t.Spec(r.SampleRate, seed))
		if err != nil {
			return synth.Buffer{}, err
		}
		if out, err = synth.Overlay(out, layer); err != nil {
			return synth.Buffer{}, err
		}
	}
	return r.Mix.apply(out)
}

func (r Recipe) renderSequence(seed uint64) (synth.Buffer, error) {
	seq := r.Sequence

	lead, err := synth.Silence(ms(seq.LeadMS), r.SampleRate)
	if err != nil {
		return synth.Buffer{}, err
	}
	gap, err := synth.Silence(ms(seq.GapMS), r.SampleRate)
	if err != nil {
		return synth.Buffer{}, err
	}

	parts := make([]synth.Buffer, 0, 1+2*len(seq.Frequencies))
	parts = append(parts, lead)
	for _, f := range seq.Frequencies {
		note, err := synth.Generate(seq.note(f).Spec(r.SampleRate, seed))
		if err != nil {
			return synth.Buffer{}, err
		}
		if note, err = seq.Note.apply(note); err != nil {
			return synth.Buffer{}, err
		}
		parts = append(parts, note, gap)
	}
	return synth.Concat(parts...)
}

func (s *Sequence) note(freq float64) Tone {
	t := s.Note.Tone
	t.Frequency = freq
	return t
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
