package automaton

import "fmt"

// ErrInvalidConfig indicates that the provided configuration is invalid.
// It is returned by New before any state is allocated.
var ErrInvalidConfig = &Error{
	Kind:    InvalidConfig,
	Message: "invalid automaton configuration",
}

// ErrSymbolOutOfRange indicates a symbol outside [MinSymbol, MinSymbol+AlphabetSize).
//
// Append and Extend return it; query operations panic with it, since a
// pattern the automaton cannot even represent is a caller bug.
var ErrSymbolOutOfRange = &Error{
	Kind:    SymbolOutOfRange,
	Message: "symbol out of alphabet range",
}

// ErrInvalidState indicates a state reference that does not name a state,
// including InvalidState itself.
var ErrInvalidState = &Error{
	Kind:    InvalidStateRef,
	Message: "invalid state reference",
}

// ErrFinalized indicates an attempt to extend or re-finalize an automaton
// after Finalize has run.
var ErrFinalized = &Error{
	Kind:    AlreadyFinalized,
	Message: "automaton already finalized",
}

// ErrNotFinalized indicates a query issued before Finalize.
var ErrNotFinalized = &Error{
	Kind:    NotFinalized,
	Message: "automaton not finalized",
}

// ErrorKind classifies automaton errors into categories
type ErrorKind uint8

const (
	// InvalidConfig indicates configuration validation failed
	InvalidConfig ErrorKind = iota

	// SymbolOutOfRange indicates a symbol outside the declared alphabet
	SymbolOutOfRange

	// InvalidStateRef indicates a state ID that does not exist
	InvalidStateRef

	// AlreadyFinalized indicates a mutation after Finalize
	AlreadyFinalized

	// NotFinalized indicates a query before Finalize
	NotFinalized
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case SymbolOutOfRange:
		return "SymbolOutOfRange"
	case InvalidStateRef:
		return "InvalidStateRef"
	case AlreadyFinalized:
		return "AlreadyFinalized"
	case NotFinalized:
		return "NotFinalized"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents an error that occurred while building or querying an
// automaton. Query-layer precondition failures are raised as panics carrying
// an *Error, so they can be recovered and inspected with errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("automaton: %s: %v", e.Message, e.Cause)
	}
	return "automaton: " + e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// symbolError builds the error for an out-of-range symbol.
func symbolError(symbol int, c *Config) *Error {
	return &Error{
		Kind: SymbolOutOfRange,
		Message: fmt.Sprintf("symbol %d outside alphabet [%d, %d)",
			symbol, c.MinSymbol, c.MinSymbol+c.AlphabetSize),
	}
}

// stateError builds the error for a bad state reference.
func stateError(s StateID) *Error {
	if s == InvalidState {
		return &Error{Kind: InvalidStateRef, Message: "operation on InvalidState"}
	}
	return &Error{Kind: InvalidStateRef, Message: fmt.Sprintf("state %d does not exist", s)}
}
