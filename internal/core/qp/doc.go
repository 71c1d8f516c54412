// Package qp implements the numeric primitives of a QUEST+ style adaptive
// procedure: count-weighted log probabilities, the log-likelihood of
// stimulus/outcome data under a psychometric function, base-2 entropy of
// outcome distributions, domain bounds and uniform sampling, and stimulus
// index lookup.
//
// Every function validates its arguments before computing anything and
// returns a *domain.OpError on failure. A psychometric function that yields
// NaN is not a failure: LogLikelihood returns NaN so a sweep over many
// candidate parameter vectors can continue past inadmissible ones.
//
// Nothing in this package holds shared state. Calls for disjoint inputs may
// run concurrently, provided each Sampler's random source is not shared
// between goroutines.
package qp
