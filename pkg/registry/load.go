package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse parses a registry from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var raw RawRegistry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	reg, err := FromRaw(&raw)
	if err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	return reg, nil
}

// Load loads and parses a registry from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes a registry as a YAML document accepted by Parse.
func Marshal(reg *Registry) ([]byte, error) {
	data, err := yaml.Marshal(ToRaw(reg))
	if err != nil {
		return nil, fmt.Errorf("encoding registry: %w", err)
	}
	return data, nil
}
