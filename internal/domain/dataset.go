package domain

// StimulusCount is one stimulus together with its outcome tally
type StimulusCount struct {
	Stim          []float64 `json:"stim" yaml:"stim"`
	OutcomeCounts []int     `json:"outcome_counts" yaml:"outcome_counts"`
}

// Dataset is an ordered sequence of stimulus count records. Order is kept
// when stacking into matrices so stimulus and outcome rows stay aligned.
type Dataset []StimulusCount

// NewStimulusCount creates a record, copying the passed slices
func NewStimulusCount(stim []float64, counts []int) StimulusCount {
	return StimulusCount{
		Stim:          append([]float64(nil), stim...),
		OutcomeCounts: append([]int(nil), counts...),
	}
}

// Trials returns the total number of trials recorded for this stimulus
func (s StimulusCount) Trials() int {
	total := 0
	for _, c := range s.OutcomeCounts {
		total += c
	}
	return total
}

// StimDim returns the stimulus dimension, taken from the first record
func (d Dataset) StimDim() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Stim)
}

// NumOutcomes returns the number of outcome categories, taken from the first record
func (d Dataset) NumOutcomes() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].OutcomeCounts)
}

// Validate checks the dataset is non-empty, every record shares the same
// dimensions, and all counts are non-negative
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return &OpError{Op: "dataset", Kind: KindEmptyInput, Err: ErrEmptyInput}
	}

	stimDim, nOutcomes := d.StimDim(), d.NumOutcomes()
	if stimDim == 0 {
		return Errorf("dataset", KindInvalidArgument, "record 0 has an empty stimulus")
	}
	if nOutcomes == 0 {
		return Errorf("dataset", KindInvalidArgument, "record 0 has no outcome counts")
	}

	for i, rec := range d {
		if len(rec.Stim) != stimDim {
			return Errorf("dataset", KindInvalidArgument,
				"record %d stimulus has length %d, want %d", i, len(rec.Stim), stimDim)
		}
		if len(rec.OutcomeCounts) != nOutcomes {
			return Errorf("dataset", KindInvalidArgument,
				"record %d has %d outcome counts, want %d", i, len(rec.OutcomeCounts), nOutcomes)
		}
		for j, c := range rec.OutcomeCounts {
			if c < 0 {
				return Errorf("dataset", KindInvalidArgument,
					"record %d outcome %d has negative count %d", i, j, c)
			}
		}
	}
	return nil
}

// Add appends one observed outcome for the given stimulus, creating a record
// when the stimulus has not been seen before. Outcome is a zero-based category.
func (d Dataset) Add(stim []float64, outcome, nOutcomes int) (Dataset, error) {
	if outcome < 0 || outcome >= nOutcomes {
		return d, Errorf("dataset add", KindIndexOutOfRange,
			"outcome %d outside [0, %d)", outcome, nOutcomes)
	}
	for i := range d {
		if equalStim(d[i].Stim, stim) {
			if len(d[i].OutcomeCounts) != nOutcomes {
				return d, Errorf("dataset add", KindInvalidArgument,
					"record %d has %d outcome counts, want %d", i, len(d[i].OutcomeCounts), nOutcomes)
			}
			d[i].OutcomeCounts[outcome]++
			return d, nil
		}
	}
	counts := make([]int, nOutcomes)
	counts[outcome] = 1
	return append(d, NewStimulusCount(stim, counts)), nil
}

func equalStim(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
