// Package errors provides structured error handling for the toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration (theme/gesture file) error.
	KindConfig
	// KindResource indicates a missing or unloadable resource (image, font).
	KindResource
	// KindRender indicates a rendering backend error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindAssert indicates a violated internal precondition.
	KindAssert
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindAssert:
		return "assert"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the toolkit.
type UIError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "driver.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// AssertError represents a violated internal precondition, such as a diff
// operation referring to a child index that does not exist. These are
// programming errors: continuing would corrupt tree invariants, so they are
// raised as panics, never returned.
type AssertError struct {
	// Op is the operation whose precondition was violated.
	Op string
	// Detail describes the violated condition.
	Detail string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
}

func (e *AssertError) Error() string {
	return fmt.Sprintf("%s [assert]: %s", e.Op, e.Detail)
}

// Assertf panics with an AssertError when cond is false.
func Assertf(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	panic(&AssertError{
		Op:         op,
		Detail:     fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
	})
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
