// Package errors provides structured error reporting for the view engine.
//
// The layout, reuse and animation core has no recoverable error surface:
// missing collaborators are no-op successes and numeric edge cases are
// guarded in place. This package carries the anomalies that do happen at
// runtime (panicking callbacks, malformed configuration) to a single
// replaceable handler.
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
	// KindLayout indicates a layout pass anomaly.
	KindLayout
	// KindAnimation indicates a failure inside an animation callback.
	KindAnimation
	// KindReuse indicates a reuse pool anomaly.
	KindReuse
	// KindGesture indicates a failure inside a gesture callback.
	KindGesture
	// KindConfig indicates malformed configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindAnimation:
		return "animation"
	case KindReuse:
		return "reuse"
	case KindGesture:
		return "gesture"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ViewError represents a structured error raised by the view engine.
type ViewError struct {
	// Op is the operation that failed (e.g., "animation.Runner.Step").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View is the name of the view involved, if any.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ViewError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "sidepanel.Machine.EndDrag").
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

// ErrorHandler receives errors reported by the view engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ViewError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
