package promise2

import (
	"errors"
	"fmt"
)

// Kind classifies the error taxonomy from spec §7: the first four kinds are
// contract violations (programmer error, surfaced as panics from the
// offending API call, never propagated along a chain); UserError is the
// only kind that ever rides a Forward as a rejection.
type Kind int

const (
	// InvalidPromise: operation performed on a handle with no node.
	InvalidPromise Kind = iota
	// InvalidState: value accessed on a never-assigned ValueCell.
	InvalidState
	// DuplicateAssignment: a ValueCell or Defer fulfilled/rejected more than once.
	DuplicateAssignment
	// DuplicateChain: a Forward chained more than once.
	DuplicateChain
	// UserError: an error escaping a user function, or returned by it.
	UserError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InvalidPromise:
		return "InvalidPromise"
	case InvalidState:
		return "InvalidState"
	case DuplicateAssignment:
		return "DuplicateAssignment"
	case DuplicateChain:
		return "DuplicateChain"
	case UserError:
		return "UserError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the opaque error payload carried by the library. Contract
// violations and user errors both surface as *Error, distinguished by Kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target shares this error's Kind, matching on Kind
// rather than identity so callers can do errors.Is(err, promise2.ErrDuplicateChain).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func newErr(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapErr(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinel values for errors.Is matching against a Kind without a message.
var (
	ErrInvalidPromise       = newErr(InvalidPromise, "")
	ErrInvalidState         = newErr(InvalidState, "")
	ErrDuplicateAssignment  = newErr(DuplicateAssignment, "")
	ErrDuplicateChain       = newErr(DuplicateChain, "")
	ErrStageDisabled        = errors.New("promise2: stage kind disabled by Config")
	ErrInvalidRecursionStep = errors.New("promise2: recursion iterator step failed")
)

// UserErrorValue holds a value recovered from a panicking user function
// (stage body, onFulfill, onError, recursion iterator step);
// recoverUserError places it as the Cause of a UserError-kind *Error when
// the panic value is not itself an error. Unwrap exposes the original error
// when Value is an error, matching the teacher's PanicError.Unwrap contract.
type UserErrorValue struct {
	Value any
}

// Error implements the error interface.
func (e UserErrorValue) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error.
func (e UserErrorValue) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// recoverUserError converts a recovered panic value into a UserError-kind
// *Error, preserving the original value via Cause/Unwrap.
func recoverUserError(r any) *Error {
	if err, ok := r.(error); ok {
		return wrapErr(UserError, "user function panicked", err)
	}
	return wrapErr(UserError, "user function panicked", UserErrorValue{Value: r})
}
