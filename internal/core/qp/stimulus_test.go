package qp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

func TestStimulusAt(t *testing.T) {
	stimDomain := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	got, err := StimulusAt(1, stimDomain)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, got)

	t.Run("returns a copy", func(t *testing.T) {
		row, err := StimulusAt(0, stimDomain)
		require.NoError(t, err)
		row[0] = 100
		assert.Equal(t, 1.0, stimDomain.At(0, 0))
	})

	t.Run("single column domain", func(t *testing.T) {
		col := mat.NewDense(3, 1, []float64{1, 2, 3})
		got, err := StimulusAt(1, col)
		require.NoError(t, err)
		assert.Equal(t, []float64{2}, got)
	})
}

func TestStimulusAtOutOfRange(t *testing.T) {
	stimDomain := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	for _, idx := range []int{3, 4, -1} {
		_, err := StimulusAt(idx, stimDomain)
		require.ErrorIs(t, err, domain.ErrIndexOutOfRange, "index %d", idx)
		assert.True(t, domain.IsKind(err, domain.KindIndexOutOfRange))
	}

	_, err := StimulusAt(0, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
