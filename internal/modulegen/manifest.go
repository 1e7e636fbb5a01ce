// Package modulegen renders the typed methods of a module service from a
// TOML manifest. Method names come from the same deriver the module
// services use at runtime.
package modulegen

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
)

// EntityManifest describes one entity of a module
type EntityManifest struct {
	Name     string `toml:"name"`
	Singular string `toml:"singular"`
	Plural   string `toml:"plural"`
	// Model is the ORM type expression, e.g. "models.ProductVariant"
	Model string `toml:"model"`
	// DTO is the serialized type expression, e.g. "ProductVariantDTO"
	DTO string `toml:"dto"`
}

// ModelConfig returns the naming configuration of the entity
func (e EntityManifest) ModelConfig() modulesdk.ModelConfig {
	return modulesdk.ModelConfig{Name: e.Name, Singular: e.Singular, Plural: e.Plural}
}

// Manifest is the content of a module.toml file
type Manifest struct {
	Package  string                             `toml:"package"`
	Service  string                             `toml:"service"`
	Imports  []string                           `toml:"imports"`
	Main     EntityManifest                     `toml:"main"`
	Entities []EntityManifest                   `toml:"entities"`
	Linkable map[string][]modulesdk.LinkableKey `toml:"linkable"`
}

// LoadManifest reads and validates a manifest file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest data
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Service == "" {
		m.Service = "Service"
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields and rejects method name collisions
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("manifest: package is required")
	}
	all := append([]EntityManifest{m.Main}, m.Entities...)
	for _, e := range all {
		if e.Name == "" || e.Model == "" || e.DTO == "" {
			return fmt.Errorf("manifest: entity %q needs name, model and dto", e.Name)
		}
	}

	owners := make(map[string]string)
	claim := func(names map[modulesdk.Operation]string, entity string) error {
		for _, op := range modulesdk.Operations {
			name := names[op]
			if owner, ok := owners[name]; ok {
				return fmt.Errorf("manifest: method %q of %s collides with %s", name, entity, owner)
			}
			owners[name] = entity
		}
		return nil
	}

	if err := claim(modulesdk.MethodNames(m.Main.ModelConfig(), false), m.Main.Name); err != nil {
		return err
	}
	for _, e := range m.Entities {
		if err := claim(modulesdk.MethodNames(e.ModelConfig(), true), e.Name); err != nil {
			return err
		}
	}
	return nil
}

// LinkableNames returns the entity names with linkable keys in sorted order
func (m *Manifest) LinkableNames() []string {
	names := make([]string, 0, len(m.Linkable))
	for name := range m.Linkable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
