package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"questplus/internal/codec"
	"questplus/internal/domain"

	"gopkg.in/yaml.v3"
)

// ExperimentFile represents the experiment file structure (YAML or JSON)
type ExperimentFile struct {
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Model      string         `yaml:"model" json:"model"`
	Params     []float64      `yaml:"params" json:"params"`
	Domains    [][]float64    `yaml:"domains,omitempty" json:"domains,omitempty"`
	StimDomain [][]float64    `yaml:"stim_domain,omitempty" json:"stim_domain,omitempty"`
	Outcomes   int            `yaml:"outcomes,omitempty" json:"outcomes,omitempty"`
	Data       domain.Dataset `yaml:"data,omitempty" json:"data,omitempty"`
	Trials     []TrialFile    `yaml:"trials,omitempty" json:"trials,omitempty"`
}

// TrialFile is a single presented stimulus and its zero-based outcome
type TrialFile struct {
	Stim    []float64 `yaml:"stim" json:"stim"`
	Outcome int       `yaml:"outcome" json:"outcome"`
}

// Experiment is the validated, in-memory form of an experiment file
type Experiment struct {
	Name       string
	Model      string
	Params     []float64
	Domains    domain.DomainList
	StimDomain *mat.Dense
	Data       domain.Dataset
}

// LoadExperiment loads an experiment from a file, picking the format from
// its extension
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseExperiment(data, codec.FormatFromPath(path))
}

// ParseExperiment parses an experiment from YAML or JSON bytes
func ParseExperiment(data []byte, format string) (*Experiment, error) {
	var ef ExperimentFile
	switch format {
	case "json":
		if err := json.Unmarshal(data, &ef); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &ef); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return convertExperiment(&ef)
}

func convertExperiment(ef *ExperimentFile) (*Experiment, error) {
	exp := &Experiment{
		Name:   ef.Name,
		Model:  ef.Model,
		Params: ef.Params,
	}

	// Convert parameter domains
	for _, d := range ef.Domains {
		exp.Domains = append(exp.Domains, domain.Domain(d))
	}

	// Convert stimulus domain to a matrix
	if len(ef.StimDomain) > 0 {
		m, err := stimDomainMatrix(ef.StimDomain)
		if err != nil {
			return nil, err
		}
		exp.StimDomain = m
	}

	// Recorded counts first, then fold in individual trials
	exp.Data = append(exp.Data, ef.Data...)
	if len(ef.Trials) > 0 {
		nOutcomes := ef.Outcomes
		if nOutcomes == 0 {
			nOutcomes = exp.Data.NumOutcomes()
		}
		if nOutcomes == 0 {
			return nil, domain.Errorf("load experiment", domain.KindInvalidArgument,
				"trials need an outcome count (set outcomes)")
		}
		for i, tr := range ef.Trials {
			var err error
			exp.Data, err = exp.Data.Add(tr.Stim, tr.Outcome, nOutcomes)
			if err != nil {
				return nil, fmt.Errorf("trial %d: %w", i, err)
			}
		}
	}

	if len(exp.Data) > 0 {
		if err := exp.Data.Validate(); err != nil {
			return nil, fmt.Errorf("invalid data: %w", err)
		}
	}

	return exp, nil
}

// stimDomainMatrix stacks rows into a matrix, rejecting ragged input
func stimDomainMatrix(rows [][]float64) (*mat.Dense, error) {
	cols := len(rows[0])
	if cols == 0 {
		return nil, domain.Errorf("load experiment", domain.KindInvalidArgument,
			"stim_domain row 0 is empty")
	}
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, domain.Errorf("load experiment", domain.KindInvalidArgument,
				"stim_domain row %d has %d values, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}
