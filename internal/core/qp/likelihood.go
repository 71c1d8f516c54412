package qp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

// Evaluator computes log-likelihoods of stimulus count data
type Evaluator struct {
	// Check re-derives the outcome count matrix record by record and fails
	// with a data consistency error if it disagrees with the stacked matrix.
	// Off by default; it slows every call down.
	Check bool
}

// LogLikelihood is Evaluator{}.LogLikelihood
func LogLikelihood(data domain.Dataset, pf domain.PsychometricFunc, params []float64) (float64, error) {
	return Evaluator{}.LogLikelihood(data, pf, params)
}

// LogLikelihood returns the natural-log likelihood of data under pf with the
// given parameters. pf is called exactly once. If any predicted proportion
// is NaN the result is NaN with a nil error.
func (e Evaluator) LogLikelihood(data domain.Dataset, pf domain.PsychometricFunc, params []float64) (float64, error) {
	const op = "loglikelihood"
	if pf == nil {
		return 0, invalid(op, "psychometric function must not be nil")
	}
	if params == nil {
		return 0, invalid(op, "params must not be nil")
	}
	if err := data.Validate(); err != nil {
		return 0, wrapOp(op, err)
	}

	stimMat := StackStimuli(data)
	predicted, err := pf.Predict(stimMat, params)
	if err != nil {
		return 0, err
	}
	if isNilMatrix(predicted) {
		return 0, invalid(op, "psychometric function returned no proportions")
	}

	counts := StackOutcomeCounts(data)
	if e.Check {
		if err := checkUnpacking(data, counts); err != nil {
			return 0, err
		}
	}

	if hasNaN(predicted) {
		return math.NaN(), nil
	}

	nLogP, err := NLogP(counts, predicted)
	if err != nil {
		return 0, wrapOp(op, err)
	}
	return mat.Sum(nLogP), nil
}

// StackStimuli builds the (records x stimDim) stimulus matrix in record
// order. data must be valid.
func StackStimuli(data domain.Dataset) *mat.Dense {
	stimDim := data.StimDim()
	flat := make([]float64, 0, len(data)*stimDim)
	for _, rec := range data {
		flat = append(flat, rec.Stim...)
	}
	return mat.NewDense(len(data), stimDim, flat)
}

// StackOutcomeCounts builds the (records x outcomes) count matrix in record
// order. data must be valid.
func StackOutcomeCounts(data domain.Dataset) *mat.Dense {
	nOutcomes := data.NumOutcomes()
	flat := make([]float64, 0, len(data)*nOutcomes)
	for _, rec := range data {
		for _, c := range rec.OutcomeCounts {
			flat = append(flat, float64(c))
		}
	}
	return mat.NewDense(len(data), nOutcomes, flat)
}

// checkUnpacking compares the stacked counts against a row-by-row rebuild
func checkUnpacking(data domain.Dataset, counts mat.Matrix) error {
	rebuilt := mat.NewDense(len(data), data.NumOutcomes(), nil)
	for i, rec := range data {
		row := make([]float64, len(rec.OutcomeCounts))
		for j, c := range rec.OutcomeCounts {
			row[j] = float64(c)
		}
		rebuilt.SetRow(i, row)
	}
	if !mat.Equal(counts, rebuilt) {
		return domain.Errorf("loglikelihood", domain.KindDataConsistency,
			"two ways of unpacking outcome counts do not match")
	}
	return nil
}
