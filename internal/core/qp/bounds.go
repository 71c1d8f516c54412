package qp

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"questplus/internal/domain"
)

// Bounds returns the per-dimension minimum and maximum of a domain list
func Bounds(list domain.DomainList) (lower, upper []float64, err error) {
	if err := list.Validate(); err != nil {
		return nil, nil, wrapOp("bounds", err)
	}

	lower = make([]float64, len(list))
	upper = make([]float64, len(list))
	for i, d := range list {
		lower[i] = d.Min()
		upper[i] = d.Max()
	}
	return lower, upper, nil
}

// Sampler draws points uniformly from the box spanned by a domain list.
// The draw is continuous: a component need not be a member of its domain.
type Sampler struct {
	// Src is the random source. Nil uses the process-wide generator.
	Src rand.Source
}

// NewSampler creates a sampler over the given source
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{Src: src}
}

// Draw returns one point with component i uniform on [lower[i], upper[i]]
func (s *Sampler) Draw(list domain.DomainList) ([]float64, error) {
	lower, upper, err := Bounds(list)
	if err != nil {
		return nil, wrapOp("draw sample", err)
	}

	v := make([]float64, len(list))
	for i := range v {
		if lower[i] == upper[i] {
			v[i] = lower[i]
			continue
		}
		u := distuv.Uniform{Min: lower[i], Max: upper[i], Src: s.Src}
		v[i] = u.Rand()
	}
	return v, nil
}

// DrawSample draws a single point using src
func DrawSample(list domain.DomainList, src rand.Source) ([]float64, error) {
	return NewSampler(src).Draw(list)
}
