package minerstat_common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures returned by the minerstat client
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindTransport covers connection, timeout, read and non-2xx failures
	KindTransport
	// KindParse covers response bodies that are not a JSON array of coins
	KindParse
	// KindNotImplemented is returned by operations that are deliberately absent
	KindNotImplemented
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport-failure"
	case KindParse:
		return "parse-failure"
	case KindNotImplemented:
		return "not-implemented"
	default:
		return "unknown"
	}
}

// ErrNotImplemented is wrapped by every KindNotImplemented error
var ErrNotImplemented = errors.New("not implemented")

// Error carries the failure kind, the operation that failed and the cause
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewError wraps err with a kind and operation name
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minerstat %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("minerstat %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
