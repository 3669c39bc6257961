package query

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeSearchQuery decodes a loosely typed document, such as a YAML preset,
// into a SearchQuery. Keys match the JSON wire names.
func DecodeSearchQuery(input map[string]any) (SearchQuery, error) {
	var q SearchQuery
	if err := decode(input, &q); err != nil {
		return SearchQuery{}, fmt.Errorf("error decoding search query: %w", err)
	}
	return q, nil
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Squash:      true,
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
