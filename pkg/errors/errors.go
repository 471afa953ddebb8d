// Package errors provides structured error handling for skeleton overlays.
//
// Layer operations are total: they never fail visibly. Caller contract
// violations (an empty palette, for example) are returned at construction
// boundaries as [*SkeletonError] values and reported through the global
// [ErrorHandler] when no error return exists.
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
	// KindContract indicates a caller contract violation, such as an empty color list.
	KindContract
	// KindConfig indicates an invalid or unreadable configuration file.
	KindConfig
	// KindRender indicates a rendering or export error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SkeletonError represents a structured error raised by a skeleton operation.
type SkeletonError struct {
	// Op is the operation that failed (e.g., "skeleton.NewLayer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SkeletonError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SkeletonError) Unwrap() error {
	return e.Err
}

// New returns a SkeletonError for op wrapping err.
func New(op string, kind ErrorKind, err error) *SkeletonError {
	return &SkeletonError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
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

// ErrorHandler receives errors reported by skeleton operations.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SkeletonError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
