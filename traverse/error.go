package traverse

import "fmt"

// Error types for traversal.

// ErrInvalidConfig indicates the provided configuration is invalid.
// Caught during Traverser construction.
var ErrInvalidConfig = &Error{Kind: InvalidConfig, Message: "invalid traverser configuration"}

// ErrNilAutomaton indicates New was called without an automaton.
var ErrNilAutomaton = &Error{Kind: NilAutomaton, Message: "nil automaton"}

// ErrGenerationLimit indicates Execute exceeded Config.MaxGenerations
// before the tail set emptied. There are no partial results: the
// enumeration either completes or fails.
var ErrGenerationLimit = &Error{Kind: GenerationLimit, Message: "generation limit exceeded"}

// ErrorKind classifies traversal errors.
type ErrorKind uint8

const (
	// InvalidConfig indicates configuration validation failed.
	InvalidConfig ErrorKind = iota

	// NilAutomaton indicates construction without an automaton.
	NilAutomaton

	// GenerationLimit indicates the MaxGenerations bound was hit.
	GenerationLimit
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case NilAutomaton:
		return "NilAutomaton"
	case GenerationLimit:
		return "GenerationLimit"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents an error during traverser construction or execution.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is implements error comparison for errors.Is by kind, so callers can test
// against the Err* sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
