// Package domain defines the core data types for the questplus scoring primitives.
//
// This package contains the values that flow between an adaptive testing loop
// and the statistical core: candidate parameter domains, stimulus/outcome count
// records, and the psychometric function capability.
//
// # Core Types
//
// Domain is the finite, ordered set of candidate values for one parameter or
// stimulus dimension. DomainList groups one Domain per dimension and defines a
// rectangular sampling region.
//
// StimulusCount pairs a stimulus parameter vector with the number of times each
// response outcome was observed for it. Dataset is an ordered slice of records
// sharing the same stimulus dimension and outcome count.
//
// # Psychometric Functions
//
// PsychometricFunc is a capability rather than a type hierarchy: anything that
// maps a stimulus matrix and a parameter vector to a matrix of predicted outcome
// proportions satisfies it. PsychometricFuncOf adapts a plain function.
//
// # Errors
//
// OpError carries an ErrorKind so callers can classify failures with IsKind or
// errors.Is against the package sentinels. A NaN prediction is not an error.
//
// # Design Principles
//
// - No I/O or logging
// - Values constructed per call by the caller and never cached
// - Validation happens before any computation
package domain
