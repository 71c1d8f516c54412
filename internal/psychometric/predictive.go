package psychometric

import (
	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

// Predictive evaluates pf over every row of the stimulus domain and returns
// the transposed proportions: one column per candidate stimulus, one row per
// outcome. Columns are the distributions entropy is computed over.
func Predictive(pf domain.PsychometricFunc, stimDomain mat.Matrix, params []float64) (*mat.Dense, error) {
	if pf == nil {
		return nil, domain.Errorf("predictive", domain.KindInvalidArgument, "psychometric function must not be nil")
	}
	props, err := pf.Predict(stimDomain, params)
	if err != nil {
		return nil, err
	}
	if props == nil {
		return nil, domain.Errorf("predictive", domain.KindInvalidArgument, "psychometric function returned no proportions")
	}
	return mat.DenseCopyOf(props.T()), nil
}
