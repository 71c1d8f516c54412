package domain

import "math"

// Domain is the finite set of candidate values for one parameter or
// stimulus dimension
type Domain []float64

// DomainList holds one Domain per dimension
type DomainList []Domain

// Validate checks the domain is non-empty and totally ordered
func (d Domain) Validate() error {
	if len(d) == 0 {
		return ErrEmptyInput
	}
	for i, v := range d {
		if math.IsNaN(v) {
			return Errorf("domain", KindInvalidArgument, "value %d is NaN", i)
		}
	}
	return nil
}

// Min returns the smallest value in the domain. The domain must be valid.
func (d Domain) Min() float64 {
	m := d[0]
	for _, v := range d[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value in the domain. The domain must be valid.
func (d Domain) Max() float64 {
	m := d[0]
	for _, v := range d[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Validate checks the list is non-empty and every domain is valid
func (l DomainList) Validate() error {
	if len(l) == 0 {
		return &OpError{Op: "domain list", Kind: KindEmptyInput, Err: ErrEmptyInput}
	}
	for i, d := range l {
		if err := d.Validate(); err != nil {
			return Errorf("domain list", KindInvalidArgument, "domain %d: %w", i, err)
		}
	}
	return nil
}
