package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"questplus/internal/config"
)

// render writes v in the configured format; text falls back to the given printer
func render(w io.Writer, format config.OutputFormat, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return nil
	default:
		return text(w)
	}
}

// jsonFloat marshals NaN and infinities as strings, which encoding/json
// otherwise refuses
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(fmt.Sprint(v))
	}
	return json.Marshal(v)
}

func jsonFloats(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}
	return out
}
