package generator

import (
	"errors"
	"fmt"

	"kenken-engine/internal/core"
)

// GenErrorKind distinguishes why generation failed.
type GenErrorKind int

const (
	// ErrAttemptsExhausted means no unique puzzle was found within
	// MaxAttempts tries.
	ErrAttemptsExhausted GenErrorKind = iota
	// ErrGridSizeTooLarge means n exceeds what a Domain can represent.
	ErrGridSizeTooLarge
)

// GenError is the generator's error type. A wrapped core error (from
// Puzzle.Validate) is available via errors.As / errors.Unwrap.
type GenError struct {
	Kind     GenErrorKind
	Attempts uint32
	N        int
	Hint     string
	Wrapped  error
}

func (e *GenError) Error() string {
	switch e.Kind {
	case ErrAttemptsExhausted:
		return fmt.Sprintf("generation exhausted attempts (%d)", e.Attempts)
	case ErrGridSizeTooLarge:
		if e.Hint != "" {
			return fmt.Sprintf("grid size n=%d unsupported: %s", e.N, e.Hint)
		}
		return fmt.Sprintf("grid size n=%d exceeds what a domain can represent", e.N)
	default:
		if e.Wrapped != nil {
			return e.Wrapped.Error()
		}
		return "generation failed"
	}
}

func (e *GenError) Unwrap() error {
	return e.Wrapped
}

func wrapCoreErr(err error) error {
	if err == nil {
		return nil
	}
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return &GenError{Wrapped: ve}
	}
	return &GenError{Wrapped: err}
}
