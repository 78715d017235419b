// Package manifest loads declaration manifests: TOML documents carrying an
// alias table, named type expressions, and declaration pairs to reconcile.
// Manifests are structural — they describe type trees directly and do not
// involve source-language syntax.
package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TypeSpec is the TOML shape of one type expression. Which fields are
// meaningful depends on Kind; Build validates the combination.
type TypeSpec struct {
	Kind   string     `toml:"kind"`
	Name   string     `toml:"name"`
	Args   []TypeSpec `toml:"args"`
	Elems  []TypeSpec `toml:"elems"`
	Params []TypeSpec `toml:"params"`
	Result *TypeSpec  `toml:"result"`
	Attrs  []string   `toml:"attrs"`
	Inner  *TypeSpec  `toml:"inner"`
}

// Pair is one declaration seen in two artifacts, to be merged second-toward-first.
type Pair struct {
	Name   string   `toml:"name"`
	First  TypeSpec `toml:"first"`
	Second TypeSpec `toml:"second"`
}

// Document is a parsed manifest.
type Document struct {
	Aliases map[string]TypeSpec `toml:"aliases"`
	Types   map[string]TypeSpec `toml:"types"`
	Pairs   []Pair              `toml:"pair"`
}

// Load parses a manifest file.
func Load(path string) (*Document, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &doc, nil
}

// Parse parses manifest text. Used by tests and stdin input.
func Parse(data string) (*Document, error) {
	var doc Document
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &doc, nil
}
