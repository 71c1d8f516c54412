package qp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// logEpsilon keeps ln(p) finite for very small p
const logEpsilon = 1e-10

// nlogp is the per-entry rule shared by NLogP and NLogPVec.
// An observed outcome with zero probability maps to -math.MaxFloat64
// instead of -Inf so downstream sums stay finite. n == 0 always gives +0.
func nlogp(n, p float64) float64 {
	switch {
	case n == 0:
		return 0
	case p == 0:
		return -math.MaxFloat64
	}
	return n * math.Log(p+logEpsilon)
}

// NLogP computes n*ln(p) elementwise. n and p must have the same shape and
// hold only non-negative values.
//
// For each entry:
//   - p == 0 and n > 0 gives -math.MaxFloat64
//   - p == 0 and n == 0 gives 0
//   - otherwise n*ln(p+1e-10)
func NLogP(n, p mat.Matrix) (*mat.Dense, error) {
	const op = "nlogp"
	if isNilMatrix(n) || isNilMatrix(p) {
		return nil, invalid(op, "n and p must not be nil")
	}
	if err := checkNonNegative(op, "n", n); err != nil {
		return nil, err
	}
	if err := checkNonNegative(op, "p", p); err != nil {
		return nil, err
	}
	if err := sameShape(op, n, p); err != nil {
		return nil, err
	}

	r, c := n.Dims()
	if r == 0 || c == 0 {
		return nil, invalid(op, "n and p must not be empty")
	}
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, _ float64) float64 {
		return nlogp(n.At(i, j), p.At(i, j))
	}, out)
	return out, nil
}

// NLogPVec is NLogP for vectors. A one-element vector covers the scalar case.
func NLogPVec(n, p []float64) ([]float64, error) {
	const op = "nlogp"
	if n == nil || p == nil {
		return nil, invalid(op, "n and p must not be nil")
	}
	for i, v := range n {
		if v < 0 || math.IsNaN(v) {
			return nil, invalid(op, "each n must be non-negative, got %v at %d", v, i)
		}
	}
	for i, v := range p {
		if v < 0 || math.IsNaN(v) {
			return nil, invalid(op, "each p must be non-negative, got %v at %d", v, i)
		}
	}
	if len(n) != len(p) {
		return nil, invalid(op, "lengths differ: %d != %d", len(n), len(p))
	}

	out := make([]float64, len(n))
	for i := range n {
		out[i] = nlogp(n[i], p[i])
	}
	return out, nil
}
