package format

import (
	"fmt"

	"cssfmt/internal/diag"
	"cssfmt/internal/source"
)

// ErrorKind classifies formatter failures.
type ErrorKind uint8

const (
	// ErrUnsupported: the tree holds a construct no formatter handles.
	ErrUnsupported ErrorKind = iota + 1
	// ErrInvariant: the tree violates the data model (e.g. an empty list
	// that must have at least one element). Indicates a parser defect.
	ErrInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupported:
		return "unsupported construct"
	case ErrInvariant:
		return "invariant violation"
	}
	return "unknown"
}

// Error is returned by the formatting entry points. It aborts the current
// formatting pass only.
type Error struct {
	Kind ErrorKind
	Node string      // node kind, e.g. "layer name"
	Span source.Span // closest known location
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("format: %s in %s: %s", e.Kind, e.Node, e.Msg)
}

// Code maps the error onto a diagnostic code.
func (e *Error) Code() diag.Code {
	if e.Kind == ErrUnsupported {
		return diag.FmtUnsupportedConstruct
	}
	return diag.FmtInvariantViolation
}

// Diagnostic converts the error into a single actionable diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code(), e.Span, fmt.Sprintf("%s: %s", e.Node, e.Msg))
}
