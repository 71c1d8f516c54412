package codec

import (
	"fmt"
	"io"

	"questplus/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlRecord is one list item. The document is a bare list so exported
// data can be placed under an experiment file's data key unchanged.
type yamlRecord struct {
	Stim          []float64 `yaml:"stim,flow"`
	OutcomeCounts []int     `yaml:"outcome_counts,flow"`
}

// Parse imports a dataset from YAML
func (c *YAMLCodec) Parse(r io.Reader) (domain.Dataset, error) {
	var records []yamlRecord
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	data := make(domain.Dataset, 0, len(records))
	for _, yr := range records {
		data = append(data, domain.NewStimulusCount(yr.Stim, yr.OutcomeCounts))
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return data, nil
}

// Export exports a dataset to YAML
func (c *YAMLCodec) Export(data domain.Dataset, w io.Writer) error {
	records := make([]yamlRecord, 0, len(data))
	for _, rec := range data {
		records = append(records, yamlRecord{
			Stim:          rec.Stim,
			OutcomeCounts: rec.OutcomeCounts,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
