package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"questplus/internal/domain"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a dataset from a JSON array of records
func (c *JSONCodec) Parse(r io.Reader) (domain.Dataset, error) {
	var data domain.Dataset
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return data, nil
}

// Export exports a dataset to JSON
func (c *JSONCodec) Export(data domain.Dataset, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
