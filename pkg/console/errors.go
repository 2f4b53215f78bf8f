package console

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnrecognizedInput is returned by the dispatcher when no alias of
	// any active command matches the first token, or the line is blank and
	// no blank command is active.
	ErrUnrecognizedInput = errors.New("input unrecognized")

	// ErrInputExhausted is returned by line readers, and propagated by
	// Prompt, when no further input is available.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrInterrupted is returned by interactive line readers when the user
	// cancels the current line (Ctrl+C).
	ErrInterrupted = errors.New("input interrupted")
)

// InvalidCommandSpecError reports a malformed command definition at setup time.
type InvalidCommandSpecError struct {
	Aliases []string
	Reason  string
}

func (e *InvalidCommandSpecError) Error() string {
	if len(e.Aliases) == 0 {
		return fmt.Sprintf("invalid command spec: %s", e.Reason)
	}
	return fmt.Sprintf("invalid command spec [%s]: %s", strings.Join(e.Aliases, ", "), e.Reason)
}

// ArityMismatchError reports a matched alias invoked with the wrong number
// of arguments.
type ArityMismatchError struct {
	Alias    string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("The command %s takes %d arguments. You entered %d. Type help for more information about commands.",
		e.Alias, e.Expected, e.Actual)
}

// HandlerError wraps a failure returned (or panicked) by a command handler.
type HandlerError struct {
	Alias string
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Alias, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Message returns the handler's own message, which is what the console
// prints for a failed command.
func (e *HandlerError) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// ErrorKind classifies an error into the console's error taxonomy.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidCommandSpec
	KindUnrecognizedInput
	KindArityMismatch
	KindHandlerError
	KindInputExhausted
	KindInterrupted
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInvalidCommandSpec:
		return "InvalidCommandSpec"
	case KindUnrecognizedInput:
		return "UnrecognizedInput"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindHandlerError:
		return "HandlerError"
	case KindInputExhausted:
		return "InputExhausted"
	case KindInterrupted:
		return "Interrupted"
	default:
		return "Other"
	}
}

// Kind returns the taxonomy member of err. Wrapped errors are unwrapped.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var specErr *InvalidCommandSpecError
	var arityErr *ArityMismatchError
	var handlerErr *HandlerError

	switch {
	// HandlerError comes first: whatever a handler failed with, including
	// a dispatch error or ErrInputExhausted, stays a handler failure.
	case errors.As(err, &handlerErr):
		return KindHandlerError
	case errors.As(err, &specErr):
		return KindInvalidCommandSpec
	case errors.As(err, &arityErr):
		return KindArityMismatch
	case errors.Is(err, ErrUnrecognizedInput):
		return KindUnrecognizedInput
	case errors.Is(err, ErrInputExhausted):
		return KindInputExhausted
	case errors.Is(err, ErrInterrupted):
		return KindInterrupted
	default:
		return KindOther
	}
}

// IsRecoverable reports whether err is a per-line dispatch failure after
// which the console can keep prompting.
func IsRecoverable(err error) bool {
	switch Kind(err) {
	case KindUnrecognizedInput, KindArityMismatch, KindHandlerError:
		return true
	default:
		return false
	}
}
