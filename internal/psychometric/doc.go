// Package psychometric provides concrete psychometric functions that satisfy
// domain.PsychometricFunc.
//
// Both models are two-alternative: each stimulus row is a single value (dB
// for Weibull, raw units for Normal) and the predicted outcomes are
// [incorrect, correct]. Inadmissible parameter values produce NaN-filled
// predictions rather than errors, so a likelihood sweep can skip them.
package psychometric
