package embed

import (
	"strings"
	"testing"
)

func TestGetRecipes(t *testing.T) {
	recipes := string(GetRecipes())

	if !strings.Contains(recipes, "sample_rate: 44100") {
		t.Error("Expected catalog to pin the sample rate to 44100")
	}

	for _, name := range []string{
		"sine_440hz.wav",
		"square_440hz.wav",
		"sawtooth_440hz.wav",
		"triangle_440hz.wav",
		"c_major_chord.wav",
		"c_major_scale.wav",
		"frequency_sweep.wav",
		"white_noise.wav",
		"beat_frequency.wav",
	} {
		if !strings.Contains(recipes, "name: "+name) {
			t.Errorf("Expected catalog to contain %s", name)
		}
	}
}
