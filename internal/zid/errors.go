package zid

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by every *Error returned from this package.
var (
	// ErrInvalidCharacter is returned when an identifier contains a character
	// that is neither an ASCII letter, an ASCII digit, nor a separator.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMalformed is returned for identifiers that are empty, start or end
	// with a separator, or consist only of separators.
	ErrMalformed = errors.New("malformed identifier")

	// ErrNoParent is returned when asking a root identifier for its parent.
	ErrNoParent = errors.New("identifier has no parent")

	// ErrUnsupportedOperation is returned when asking the scratch identifier
	// for its successor.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Error describes a failed identifier operation.
type Error struct {
	// Op is the operation that failed: "parse", "next" or "parent".
	Op string
	// Value is the identifier text the operation was applied to.
	Value string
	// Pos is the byte offset of the offending character, or -1.
	Pos int
	// Detail is an optional human-readable explanation.
	Detail string
	// Err is one of the package sentinel errors.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("zid: %s %q: %s", e.Op, e.Value, msg)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

func malformed(value, detail string, pos int) *Error {
	return &Error{Op: "parse", Value: value, Pos: pos, Detail: detail, Err: ErrMalformed}
}
