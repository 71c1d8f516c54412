package domain

import "gonum.org/v1/gonum/mat"

// PsychometricFunc maps a stimulus matrix (one row per stimulus) and a
// parameter vector to predicted outcome proportions of shape
// (rows, outcomes). Each row is a probability distribution, or the matrix
// contains NaN when the parameters are inadmissible.
type PsychometricFunc interface {
	Predict(stim mat.Matrix, params []float64) (*mat.Dense, error)
}

// PsychometricFuncOf adapts an ordinary function to PsychometricFunc
type PsychometricFuncOf func(stim mat.Matrix, params []float64) (*mat.Dense, error)

// Predict calls f(stim, params). A nil f is an invalid argument.
func (f PsychometricFuncOf) Predict(stim mat.Matrix, params []float64) (*mat.Dense, error) {
	if f == nil {
		return nil, Errorf("psychometric function", KindInvalidArgument, "function must not be nil")
	}
	return f(stim, params)
}
