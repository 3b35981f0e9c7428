package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a service failure so handlers can map it to a
// transport response without matching on message text.
type ErrorKind int

const (
	// ValidationFailure means the input was malformed or missing.
	ValidationFailure ErrorKind = iota
	// ReferenceNotFound means a referenced user, product or order is absent.
	ReferenceNotFound
	// CapacityExceeded means a product does not have enough stock.
	CapacityExceeded
	// AuthorizationDenied means the caller may not perform the operation.
	AuthorizationDenied
	// IllegalTransition means an order status change violates the
	// transition table.
	IllegalTransition
	// Conflict means a persistence step modified no records, implying a
	// lost race.
	Conflict
	// DependencyFailure means an underlying store failed.
	DependencyFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationFailure:
		return "validation failure"
	case ReferenceNotFound:
		return "reference not found"
	case CapacityExceeded:
		return "capacity exceeded"
	case AuthorizationDenied:
		return "authorization denied"
	case IllegalTransition:
		return "illegal transition"
	case Conflict:
		return "conflict"
	case DependencyFailure:
		return "dependency failure"
	default:
		return "unknown"
	}
}

// Error is the structured outcome returned by services on failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds a service error with a formatted message.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrorKindOf extracts the kind from a service error. The second return
// value is false if err is not a service error.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a service error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := ErrorKindOf(err)
	return ok && k == kind
}
