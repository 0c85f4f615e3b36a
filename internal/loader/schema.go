package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"rpgkit/component"
)

// Manifest is the declarative entity file: reusable templates plus the
// entities to create.
type Manifest struct {
	Templates map[string]EntityDef `yaml:"templates"`
	Entities  []EntityDef          `yaml:"entities"`
}

// EntityDef declares one entity (or template): an optional identifier, an
// optional base template, and per-component data records.
type EntityDef struct {
	Identifier string                      `yaml:"identifier"`
	Template   string                      `yaml:"template"`
	Components map[string]component.Record `yaml:"components"`
}

// ParseManifest decodes a YAML manifest. Unknown fields are rejected so
// typos in data files surface as errors instead of silent drops.
func ParseManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				if strings.HasPrefix(msg, "line") {
					return m, fmt.Errorf("invalid manifest: %s", msg)
				}
			}
		}
		return m, fmt.Errorf("invalid manifest: %w", err)
	}
	return m, nil
}
