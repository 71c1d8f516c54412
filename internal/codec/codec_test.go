package codec

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"questplus/internal/domain"
)

const jsonDataset = `[
  {"stim": [-20], "outcome_counts": [3, 1]},
  {"stim": [-10], "outcome_counts": [0, 4]}
]`

const yamlDatasetDoc = `- stim: [-20]
  outcome_counts: [3, 1]
- stim: [-10]
  outcome_counts: [0, 4]
`

func TestJSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := NewJSONCodec().Parse(strings.NewReader(jsonDataset))
	if err != nil {
		t.Fatalf("JSON parse failed: %v", err)
	}
	fromYAML, err := NewYAMLCodec().Parse(strings.NewReader(yamlDatasetDoc))
	if err != nil {
		t.Fatalf("YAML parse failed: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Errorf("datasets differ:\njson: %+v\nyaml: %+v", fromJSON, fromYAML)
	}
	if len(fromJSON) != 2 || fromJSON[1].OutcomeCounts[1] != 4 {
		t.Errorf("unexpected dataset: %+v", fromJSON)
	}
}

func TestExportThenParse(t *testing.T) {
	data := domain.Dataset{
		domain.NewStimulusCount([]float64{1, 2}, []int{0, 1, 2}),
		domain.NewStimulusCount([]float64{3, 4}, []int{5, 0, 0}),
	}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			c, err := ForFormat(format)
			if err != nil {
				t.Fatalf("ForFormat(%q): %v", format, err)
			}

			var buf bytes.Buffer
			if err := c.Export(data, &buf); err != nil {
				t.Fatalf("export failed: %v", err)
			}
			got, err := c.Parse(&buf)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !reflect.DeepEqual(got, data) {
				t.Errorf("got %+v, want %+v", got, data)
			}
		})
	}
}

func TestParseRejectsInvalidDatasets(t *testing.T) {
	tests := []struct {
		name  string
		codec Importer
		input string
	}{
		{"json empty", NewJSONCodec(), `[]`},
		{"json ragged", NewJSONCodec(), `[{"stim":[1],"outcome_counts":[1,2]},{"stim":[2],"outcome_counts":[1]}]`},
		{"json negative", NewJSONCodec(), `[{"stim":[1],"outcome_counts":[-1,2]}]`},
		{"yaml empty", NewYAMLCodec(), "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Parse(strings.NewReader(tt.input))
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}

	if _, err := NewJSONCodec().Parse(strings.NewReader(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"json", "JSON", "yaml", "yml"} {
		if _, err := ForFormat(format); err != nil {
			t.Errorf("ForFormat(%q) failed: %v", format, err)
		}
	}
	if _, err := ForFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}

	if got := FormatFromPath("data/run.JSON"); got != "json" {
		t.Errorf("FormatFromPath json = %q", got)
	}
	if got := FormatFromPath("data/run.yml"); got != "yaml" {
		t.Errorf("FormatFromPath yml = %q", got)
	}
}

func TestYAMLExportIsBareList(t *testing.T) {
	data := domain.Dataset{domain.NewStimulusCount([]float64{-20}, []int{3, 1})}

	var buf bytes.Buffer
	if err := NewYAMLCodec().Export(data, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	want := "- stim: [-20]\n  outcome_counts: [3, 1]\n"
	if buf.String() != want {
		t.Errorf("export = %q, want %q", buf.String(), want)
	}

	if _, err := NewYAMLCodec().Parse(strings.NewReader("records:\n  - stim: [1]\n")); err == nil {
		t.Error("expected a mapping document to be rejected")
	}
}
