package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyInput      = fmt.Errorf("%w: empty input", ErrInvalidArgument)
	ErrDataConsistency = errors.New("data consistency")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindEmptyInput      ErrorKind = "empty_input"
	KindDataConsistency ErrorKind = "data_consistency"
	KindIndexOutOfRange ErrorKind = "index_out_of_range"
)

// sentinel returns the sentinel error matching a kind
func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindEmptyInput:
		return ErrEmptyInput
	case KindDataConsistency:
		return ErrDataConsistency
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	default:
		return nil
	}
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind, so errors.Is works without
// every call site wrapping the sentinel itself.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && errors.Is(s, target)
}

// IsKind helps callers classify errors without depending on the core packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Errorf builds an OpError with a formatted cause.
func Errorf(op string, kind ErrorKind, format string, args ...any) error {
	return &OpError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
