package recipe

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minicodemonkey/samplegen/embed"
)

// Catalog is the ordered list of artifacts a run produces.
type Catalog struct {
	SampleRate int      `yaml:"sample_rate"`
	Recipes    []Recipe `yaml:"artifacts"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embed.GetRecipes())
}

// Parse decodes a YAML catalog and validates every recipe in it.
// Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for i := range c.Recipes {
		c.Recipes[i].SampleRate = c.SampleRate
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks artifact names and every recipe's parameters.
func (c *Catalog) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidRecipe, c.SampleRate)
	}
	if len(c.Recipes) == 0 {
		return fmt.Errorf("%w: catalog has no artifacts", ErrInvalidRecipe)
	}

	seen := make(map[string]bool, len(c.Recipes))
	for _, r := range c.Recipes {
		if err := validName(r.Name); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidRecipe, r.Name, err)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w %q: duplicate artifact name", ErrInvalidRecipe, r.Name)
		}
		seen[r.Name] = true

		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the artifact names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Recipes))
	for i, r := range c.Recipes {
		names[i] = r.Name
	}
	return names
}

func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("name is required")
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return fmt.Errorf("name must not contain path separators")
	case !strings.HasSuffix(name, ".wav"):
		return fmt.Errorf("name must end in .wav")
	}
	return nil
}
