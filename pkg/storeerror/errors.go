package storeerror

import (
	"errors"
	"fmt"
)

// Code classifies a store-layer failure
type Code string

const (
	// CodeTransport means the remote store was unreachable or rejected
	// the request
	CodeTransport Code = "TRANSPORT"
	// CodeInvalid means the request could not be issued, e.g. an entity
	// without an identifier
	CodeInvalid Code = "INVALID"
)

// StoreError wraps a failure from the record store with its classification
// and the operation that produced it
type StoreError struct {
	Code Code
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Transport wraps a remote failure. Transport errors are propagated to the
// caller unchanged apart from this classification.
func Transport(op string, err error) *StoreError {
	return &StoreError{Code: CodeTransport, Op: op, Err: err}
}

// Invalid reports a request that could not be issued
func Invalid(op, message string) *StoreError {
	return &StoreError{Code: CodeInvalid, Op: op, Err: errors.New(message)}
}

// IsTransport reports whether err is (or wraps) a transport failure
func IsTransport(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeTransport
}

// IsInvalid reports whether err is (or wraps) an invalid-request failure
func IsInvalid(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeInvalid
}
