package qp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

// probabilityTolerance bounds how far a distribution's sum may stray from 1
const probabilityTolerance = 1e-7

// wrapOp re-tags an error with op, keeping its kind
func wrapOp(op string, err error) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return &domain.OpError{Op: op, Kind: oe.Kind, Err: oe.Err}
	}
	return &domain.OpError{Op: op, Kind: domain.KindInvalidArgument, Err: err}
}

func invalid(op, format string, args ...any) error {
	return domain.Errorf(op, domain.KindInvalidArgument, format, args...)
}

// isNilMatrix reports whether m is nil or a typed nil *mat.Dense
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)
	return ok && d == nil
}

func checkNonNegative(op, name string, m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v < 0 || math.IsNaN(v) {
				return invalid(op, "each %s must be non-negative, got %v at (%d,%d)", name, v, i, j)
			}
		}
	}
	return nil
}

func sameShape(op string, a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return invalid(op, "shapes differ: %dx%d != %dx%d", ar, ac, br, bc)
	}
	return nil
}

// hasNaN reports whether any entry of m is NaN
func hasNaN(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(m.At(i, j)) {
				return true
			}
		}
	}
	return false
}
