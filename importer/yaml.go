// Package importer loads mosaic definitions from YAML seed files.
//
// Each entry uses the same keys as the JSON wire form and goes through the same
// deserializer, so a missing creator, id, description or properties fails the
// same way and an omitted transferFeeInfo becomes the default fee policy.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"mosaic-lab/domain"
	"mosaic-lab/serialization"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Definitions []map[string]any `yaml:"definitions"`
}

// ParseYAML reads every definition of a seed file. Nothing is returned unless
// all entries are valid.
func ParseYAML(r io.Reader, ctx serialization.DeserializationContext) ([]domain.MosaicDefinition, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	definitions := make([]domain.MosaicDefinition, 0, len(seed.Definitions))
	for i, entry := range seed.Definitions {
		data, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		definition, err := domain.UnmarshalMosaicDefinition(data, ctx)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		definitions = append(definitions, definition)
	}
	return definitions, nil
}
