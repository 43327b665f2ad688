package tzcity

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedPattern is the single error category of the package. Every
// *PatternError and *NotFoundError matches it with errors.Is.
var ErrUnrecognizedPattern = errors.New("unrecognized pattern")

// ErrNotFound is returned (wrapped in *NotFoundError) when no time zone
// matches a query.
var ErrNotFound = errors.New("unknown city or time zone")

// PatternError reports a word that cannot be capitalized.
type PatternError struct {
	Word   string // Offending word, lowercased
	Reason string // Short description of what is wrong with it
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("could not capitalize %q: %s", e.Word, e.Reason)
}

func (e *PatternError) Unwrap() error { return ErrUnrecognizedPattern }

// NotFoundError reports a query the resolver could not map to a time zone.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find the time zone for %q", e.Query)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{ErrNotFound, ErrUnrecognizedPattern}
}
