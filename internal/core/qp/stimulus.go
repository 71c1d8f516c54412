package qp

import (
	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

// StimulusAt returns a copy of row index of the stimulus domain matrix.
// The matrix is not modified.
func StimulusAt(index int, stimDomain mat.Matrix) ([]float64, error) {
	if isNilMatrix(stimDomain) {
		return nil, invalid("stimulus at", "stimulus domain must not be nil")
	}
	rows, _ := stimDomain.Dims()
	if index < 0 || index >= rows {
		return nil, domain.Errorf("stimulus at", domain.KindIndexOutOfRange,
			"index %d outside [0, %d)", index, rows)
	}
	return mat.Row(nil, index, stimDomain), nil
}
