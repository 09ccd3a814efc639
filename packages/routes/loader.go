package routes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions reads a route file mapping name -> definition. The
// format is chosen by extension: .json is parsed as JSON, everything
// else as YAML.
func LoadDefinitions(path string) (map[string]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes file: %w", err)
	}

	defs := make(map[string]Definition)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parsing routes file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parsing routes file %s: %w", path, err)
		}
	}

	for name, def := range defs {
		if def.Name == "" {
			def.Name = name
			defs[name] = def
		}
	}

	return defs, nil
}

// LoadTable reads a route file into a new table.
func LoadTable(path string) (*Table, error) {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return NewTable(defs), nil
}
