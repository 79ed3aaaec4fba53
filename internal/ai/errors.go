package ai

import (
	"errors"
	"fmt"
)

// FailureKind separates the two ways an AI call goes wrong. The split
// exists for internal logs only; users get one generic message either way.
type FailureKind string

const (
	// KindTransport covers network and service errors: the call never
	// produced a response to parse.
	KindTransport FailureKind = "TRANSPORT"

	// KindSchema covers responses that arrived but violate the contract:
	// malformed JSON, wrong top-level shape, wrong element types.
	KindSchema FailureKind = "SCHEMA"
)

// ServiceError is a failed AI operation.
type ServiceError struct {
	Op   string // "identify_foods" or "generate_recipes"
	Kind FailureKind
	Err  error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsSchemaViolation reports whether err is a contract violation rather
// than a transport failure. Uses errors.As to handle wrapped errors.
func IsSchemaViolation(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == KindSchema
}

func transportErr(op string, err error) *ServiceError {
	return &ServiceError{Op: op, Kind: KindTransport, Err: err}
}

func schemaErr(op string, err error) *ServiceError {
	return &ServiceError{Op: op, Kind: KindSchema, Err: err}
}
