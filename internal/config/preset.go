package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/restkit/pkg/query"
)

// presetFile is the layout of a preset file:
//
//	search:
//	  includes:
//	    - relation: category
//	  sorts:
//	    - field: name
//	      direction: asc
//	  limit: 10
type presetFile struct {
	Search map[string]any `yaml:"search"`
}

// LoadPreset reads the preset search query from a YAML file. A file without
// a search key yields a nil query.
func LoadPreset(fs afero.Fs, path string) (*query.SearchQuery, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading preset file: %w", err)
	}

	return ParsePreset(data)
}

// ParsePreset decodes and validates a YAML preset.
func ParsePreset(data []byte) (*query.SearchQuery, error) {
	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("error parsing preset: %w", err)
	}
	if pf.Search == nil {
		return nil, nil
	}

	search, err := query.DecodeSearchQuery(pf.Search)
	if err != nil {
		return nil, err
	}
	if err := search.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}

	return &search, nil
}
