package app

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes orchestrator failures.
type ErrorCode string

const (
	// CodeEmptyInventory rejects a recipe request with nothing to cook from.
	CodeEmptyInventory ErrorCode = "EMPTY_INVENTORY"

	// CodeGenerationInFlight rejects a recipe request while one is
	// already running.
	CodeGenerationInFlight ErrorCode = "GENERATION_IN_FLIGHT"

	// CodeScanInFlight rejects a scan while one is already running.
	CodeScanInFlight ErrorCode = "SCAN_IN_FLIGHT"

	// CodeGenerationFailed wraps an AI failure during recipe generation.
	CodeGenerationFailed ErrorCode = "GENERATION_FAILED"

	// CodeScanFailed wraps an AI failure during food identification.
	CodeScanFailed ErrorCode = "SCAN_FAILED"

	// CodeUnknownItem rejects a lookup for an identity not in the inventory.
	CodeUnknownItem ErrorCode = "UNKNOWN_ITEM"

	// CodeUnknownPendingAction means a captured pending action carries a
	// kind this orchestrator does not recognize.
	CodeUnknownPendingAction ErrorCode = "UNKNOWN_PENDING_ACTION"
)

// Error is an orchestrator failure with a structured code.
//
// Every failure here returns control to an interactive, still-usable
// state; there are no fatal errors in this design.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is an orchestrator error with the given
// code. Uses errors.As to handle wrapped errors.
func HasCode(err error, code ErrorCode) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
