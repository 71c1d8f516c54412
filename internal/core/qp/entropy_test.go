package qp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

func TestArrayEntropy(t *testing.T) {
	tests := []struct {
		name string
		p    []float64
		want float64
	}{
		{"skewed", []float64{0.1, 0.2, 0.7}, 1.1567796494470395},
		{"fair coin", []float64{0.5, 0.5}, 1},
		{"uniform over four", []float64{0.25, 0.25, 0.25, 0.25}, 2},
		{"one-hot", []float64{0, 1, 0}, 0},
		{"zero entry ignored", []float64{0.5, 0, 0.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArrayEntropy(tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestArrayEntropyPositiveUnlessOneHot(t *testing.T) {
	dists := [][]float64{
		{0.999, 0.001},
		{0.3, 0.3, 0.4},
		{0.9, 0.05, 0.05},
	}
	for _, p := range dists {
		got, err := ArrayEntropy(p)
		require.NoError(t, err)
		assert.Greater(t, got, 0.0, "distribution %v", p)
	}
}

func TestArrayEntropyRejectsBadSums(t *testing.T) {
	for _, p := range [][]float64{
		{0.1, 0.2, 0.8},
		{0.4, 0.5},
		{0.5, 0.6},
		{0.5, 0.5 + 1e-6},
	} {
		_, err := ArrayEntropy(p)
		require.ErrorIs(t, err, domain.ErrInvalidArgument, "distribution %v", p)
		assert.Contains(t, err.Error(), "do not sum to 1")
	}
}

func TestArrayEntropyValidation(t *testing.T) {
	t.Run("empty vector", func(t *testing.T) {
		_, err := ArrayEntropy(nil)
		require.ErrorIs(t, err, domain.ErrEmptyInput)
	})

	t.Run("negative probability", func(t *testing.T) {
		_, err := ArrayEntropy([]float64{1.5, -0.5})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("within tolerance", func(t *testing.T) {
		_, err := ArrayEntropy([]float64{0.5, 0.5 + 1e-9})
		require.NoError(t, err)
	})
}

func TestArrayEntropyColumns(t *testing.T) {
	p := mat.NewDense(3, 3, []float64{
		0.1, 0.5, 0,
		0.2, 0.5, 1,
		0.7, 0, 0,
	})

	got, err := ArrayEntropyColumns(p)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 1.1567796494470395, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
	assert.InDelta(t, 0, got[2], 1e-12)

	t.Run("columns are independent", func(t *testing.T) {
		q := mat.DenseCopyOf(p)
		q.SetCol(2, []float64{0.25, 0.25, 0.5})

		other, err := ArrayEntropyColumns(q)
		require.NoError(t, err)
		assert.InDelta(t, got[0], other[0], 1e-15)
		assert.InDelta(t, got[1], other[1], 1e-15)
		assert.InDelta(t, 1.5, other[2], 1e-12)
	})

	t.Run("one bad column fails the call", func(t *testing.T) {
		q := mat.DenseCopyOf(p)
		q.Set(0, 1, 0.6)

		_, err := ArrayEntropyColumns(q)
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("nil matrix", func(t *testing.T) {
		_, err := ArrayEntropyColumns(nil)
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
