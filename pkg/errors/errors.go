// Package errors provides structured error reporting for the drawer
// runtime. The math kernels themselves never fail; what this package
// covers is the boundary around them: bad configuration, panics
// escaping user callbacks, and host-loop faults.
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
	// KindConfig indicates an invalid drawer or snap configuration.
	KindConfig
	// KindGesture indicates a fault while processing pointer input.
	KindGesture
	// KindAnimation indicates a fault in the animation frame loop.
	KindAnimation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGesture:
		return "gesture"
	case KindAnimation:
		return "animation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DrawerError represents a structured error in the drawer runtime.
type DrawerError struct {
	// Op is the operation that failed (e.g., "drawer.HandleUp").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DrawerError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DrawerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic, typically from a listener
// or animation callback supplied by the host application.
type PanicError struct {
	// Op is the operation that panicked (e.g., "drawer.notify").
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

// ErrorHandler receives errors reported by the drawer runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DrawerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
