package qp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"questplus/internal/domain"
)

// ArrayEntropy returns the base-2 entropy of a single distribution.
// p must be non-negative and sum to 1 within 1e-7; it is never renormalized.
func ArrayEntropy(p []float64) (float64, error) {
	const op = "array entropy"
	if len(p) == 0 {
		return 0, &domain.OpError{Op: op, Kind: domain.KindEmptyInput, Err: domain.ErrEmptyInput}
	}
	if err := checkDistribution(op, p, 0); err != nil {
		return 0, err
	}
	return entropyBits(p), nil
}

// ArrayEntropyColumns returns the base-2 entropy of each column of p.
// Columns are independent distributions.
func ArrayEntropyColumns(p mat.Matrix) ([]float64, error) {
	const op = "array entropy"
	if isNilMatrix(p) {
		return nil, invalid(op, "probabilities must not be nil")
	}
	r, c := p.Dims()
	if r == 0 || c == 0 {
		return nil, &domain.OpError{Op: op, Kind: domain.KindEmptyInput, Err: domain.ErrEmptyInput}
	}

	cols := make([][]float64, c)
	for j := range cols {
		cols[j] = mat.Col(nil, j, p)
		if err := checkDistribution(op, cols[j], j); err != nil {
			return nil, err
		}
	}

	out := make([]float64, c)
	for j, col := range cols {
		out[j] = entropyBits(col)
	}
	return out, nil
}

func checkDistribution(op string, p []float64, col int) error {
	for i, v := range p {
		if v < 0 {
			return invalid(op, "column %d: probability %v at %d is negative", col, v, i)
		}
	}
	// NaN sums fail this comparison too
	if sum := floats.Sum(p); !(math.Abs(sum-1) < probabilityTolerance) {
		return invalid(op, "column %d: probabilities do not sum to 1 (sum %v)", col, sum)
	}
	return nil
}

// entropyBits converts stat.Entropy, which skips zero terms, from nats to bits
func entropyBits(p []float64) float64 {
	return stat.Entropy(p) / math.Ln2
}
