// Package embed provides the built-in sample catalog compiled into samplegen.
package embed

import (
	_ "embed"
)

//go:embed recipes.yaml
var recipesYAML []byte

// GetRecipes returns the YAML source of the default artifact catalog.
func GetRecipes() []byte {
	return recipesYAML
}
