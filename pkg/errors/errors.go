// Package errors provides structured error handling for the Hover engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a malformed or incomplete configuration,
	// rejected before any engine state is created.
	KindConfig
	// KindPermission indicates the overlay display permission was absent
	// when the widget was asked to start.
	KindPermission
	// KindAttach indicates the host surface refused attachment after
	// permission was believed granted.
	KindAttach
	// KindResource indicates an icon decode failed or was skipped due to
	// memory pressure. Resource errors are absorbed by the engine.
	KindResource
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPermission:
		return "permission"
	case KindAttach:
		return "attach"
	case KindResource:
		return "resource"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HoverError represents a structured error in the Hover engine.
type HoverError struct {
	// Op is the operation that failed (e.g., "engine.Start").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field is the configuration field at fault, if applicable.
	Field string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HoverError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HoverError) Unwrap() error {
	return e.Err
}

// E constructs a HoverError for the given operation and kind.
func E(op string, kind ErrorKind, err error) *HoverError {
	return &HoverError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Config constructs a KindConfig error naming the field at fault.
func Config(op, field string, err error) *HoverError {
	return &HoverError{Op: op, Kind: KindConfig, Field: field, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of err, or KindUnknown if err is not a HoverError.
func KindOf(err error) ErrorKind {
	var he *HoverError
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindUnknown
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool { return KindOf(err) == KindConfig }

// IsPermission reports whether err is a permission error.
func IsPermission(err error) bool { return KindOf(err) == KindPermission }

// IsAttach reports whether err is a surface attachment error.
func IsAttach(err error) bool { return KindOf(err) == KindAttach }

// IsResource reports whether err is a resource error.
func IsResource(err error) bool { return KindOf(err) == KindResource }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.pointerMove").
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

// ErrorHandler receives errors reported by the Hover engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HoverError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
