// Package errs defines the typed errors returned by template application and
// registry operations. The command layer maps them to exit codes.
package errs

import (
	"errors"
	"fmt"
)

// Kind is an error category.
type Kind int

const (
	// Unknown is a kind of errors created outside of this package.
	Unknown Kind = iota
	NotFound
	Ambiguous
	InvalidDescriptor
	MissingAnswer
	InvalidAnswer
	UnknownVariable
	UnsupportedValueType
	InvalidPathSegment
	TemplateSyntaxError
	AlreadyExists
	IOError
)

var kindNames = map[Kind]string{
	Unknown:              "unknown error",
	NotFound:             "not found",
	Ambiguous:            "ambiguous",
	InvalidDescriptor:    "invalid descriptor",
	MissingAnswer:        "missing answer",
	InvalidAnswer:        "invalid answer",
	UnknownVariable:      "unknown variable",
	UnsupportedValueType: "unsupported value type",
	InvalidPathSegment:   "invalid path segment",
	TemplateSyntaxError:  "template syntax error",
	AlreadyExists:        "already exists",
	IOError:              "i/o error",
}

// String returns a kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error makes Kind usable as an errors.Is target: errors.Is(err, errs.NotFound).
func (k Kind) Error() string {
	return k.String()
}

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case NotFound:
		return 2
	case Ambiguous:
		return 3
	case InvalidDescriptor:
		return 4
	case MissingAnswer, InvalidAnswer:
		return 5
	case UnknownVariable, UnsupportedValueType, InvalidPathSegment:
		return 6
	case TemplateSyntaxError:
		return 7
	case AlreadyExists:
		return 8
	case IOError:
		return 9
	}
	return 1
}

// Error is an error of a known kind.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error kind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// New creates an error of the kind with a formatted message.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap creates an error of the kind. The message is followed by err message.
func Wrap(kind Kind, err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Err: fmt.Errorf("%s: %w", msg, err)}
}

// KindOf returns the kind of the outermost typed error in the err chain.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return Unknown
}
