// Package errors provides error values that carry structured logging
// annotations and remember where in the source they were created.
//
// It re-exports the standard library helpers so that callers only need a
// single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// AnnotatedError wraps an error with a message, optional [slog.Attr]
// annotations, and the source location where it was created.
type AnnotatedError struct {
	msg         string
	wrapped     error
	annotations []slog.Attr
	source      string
}

// NewSentinel creates a new sentinel error suitable for use with [Is].
func NewSentinel(msg string) *AnnotatedError {
	return &AnnotatedError{
		msg:         msg,
		wrapped:     nil,
		annotations: nil,
		source:      caller(),
	}
}

// Wrap annotates err with a message and optional [slog.Attr] annotations.
// The annotations surface in log output through [SlogError].
func Wrap(err error, msg string, annotations ...slog.Attr) *AnnotatedError {
	return &AnnotatedError{
		msg:         msg,
		wrapped:     err,
		annotations: annotations,
		source:      caller(),
	}
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

// Unwrap supports the standard errors traversal.
func (e *AnnotatedError) Unwrap() error {
	return e.wrapped
}

// caller resolves the file:line of the caller of the exported constructors.
// The two frames skipped are runtime.Caller and the constructor itself.
func caller() string {
	_, file, line, ok := runtime.Caller(2) //nolint:mnd // see comment above.
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// SlogError converts an error to a [slog.Attr] under the "error" group. It
// gathers annotations from every [AnnotatedError] in the chain and reports the
// source location of the outermost one.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []slog.Attr
		source      string
	)
	queue := []error{err}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}

		if annotated, ok := current.(*AnnotatedError); ok { //nolint:errorlint // only the current link matters.
			annotations = append(annotations, annotated.annotations...)
			if source == "" {
				source = annotated.source
			}
		}

		switch unwrappable := current.(type) { //nolint:errorlint // traversing the chain manually.
		case interface{ Unwrap() error }:
			queue = append(queue, unwrappable.Unwrap())
		case interface{ Unwrap() []error }:
			queue = append(queue, unwrappable.Unwrap()...)
		}
	}

	group := []any{slog.String("message", err.Error())}
	if source != "" {
		group = append(group, slog.String("source", source))
	}
	if len(annotations) > 0 {
		annotationArgs := make([]any, 0, len(annotations))
		for _, annotation := range annotations {
			annotationArgs = append(annotationArgs, annotation)
		}
		group = append(group, slog.Group("annotations", annotationArgs...))
	}

	return slog.Group("error", group...)
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the panic site rather than the recovering function.
func DecoratePanic(recovered any) error {
	const maxFrames = 64
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(0, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	source := "unknown"
	seenGopanic := false
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.gopanic" {
			seenGopanic = true
		} else if seenGopanic && !strings.HasPrefix(frame.Function, "runtime.") {
			source = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
			break
		}
		if !more {
			break
		}
	}

	return &AnnotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		wrapped:     nil,
		annotations: nil,
		source:      source,
	}
}

// New returns an error with the given message. See [errors.New].
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's chain matches target. See [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target. See [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors into a single error. See [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling Unwrap on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
