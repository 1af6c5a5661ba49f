package dfa

import "fmt"

// Error types for DFA construction.
//
// All of these are programmer errors in the description handed to New:
// there are no runtime failure modes once an automaton is built.

// ErrBadInitialState indicates the initial state id is out of range.
var ErrBadInitialState = &Error{Kind: BadInitialState, Message: "initial state out of range"}

// ErrStateOutOfRange indicates a transition target or final state id
// references a state the description does not define.
var ErrStateOutOfRange = &Error{Kind: StateOutOfRange, Message: "state id out of range"}

// ErrEmptySymbol indicates a transition on the empty symbol, which is
// reserved for the traverser's epsilon placeholder.
var ErrEmptySymbol = &Error{Kind: EmptySymbol, Message: "transition on empty symbol"}

// ErrDuplicateSymbol indicates two transitions from the same state on the
// same symbol, which would make the transition function non-deterministic.
var ErrDuplicateSymbol = &Error{Kind: DuplicateSymbol, Message: "duplicate transition symbol"}

// ErrorKind classifies DFA construction errors.
type ErrorKind uint8

const (
	// BadInitialState indicates the initial state id is out of range.
	BadInitialState ErrorKind = iota

	// StateOutOfRange indicates a referenced state id is out of range.
	StateOutOfRange

	// EmptySymbol indicates a transition on the empty symbol.
	EmptySymbol

	// DuplicateSymbol indicates two transitions from one state on one symbol.
	DuplicateSymbol
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case BadInitialState:
		return "BadInitialState"
	case StateOutOfRange:
		return "StateOutOfRange"
	case EmptySymbol:
		return "EmptySymbol"
	case DuplicateSymbol:
		return "DuplicateSymbol"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents a malformed DFA description.
type Error struct {
	Kind    ErrorKind
	Message string
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is implements error comparison for errors.Is: two DFA errors match when
// their kinds match, so callers can test against the Err* sentinels without
// caring about the formatted detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
