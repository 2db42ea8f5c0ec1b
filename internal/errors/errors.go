// Package errors defines custom error types for catalog operations.
// CatalogError provides context-aware error reporting with type classification.
package errors

import (
	"fmt"
)

// CatalogError represents errors that occur while building the catalog.
type CatalogError struct {
	Type    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeUpstreamFetch = "UPSTREAM_FETCH_FAILED"
	ErrorTypeNoData        = "NO_DATA"
	ErrorTypeConfigInvalid = "CONFIGURATION_INVALID"
	ErrorTypeShowNotFound  = "SHOW_NOT_FOUND"
)

// NewCatalogError creates a new CatalogError.
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewUpstreamFetchError wraps a failed upstream list or detail fetch.
func NewUpstreamFetchError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeUpstreamFetch, message, cause)
}

// NewNoDataError reports that the upstream returned no conference list at
// all, as opposed to a valid empty result after filtering.
func NewNoDataError() *CatalogError {
	return NewCatalogError(ErrorTypeNoData, "no data", nil)
}

// NewConfigurationError creates a configuration-related error.
func NewConfigurationError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeConfigInvalid, message, cause)
}

// NewShowNotFoundError reports a detail request for an unknown show id.
func NewShowNotFoundError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeShowNotFound, fmt.Sprintf("no cached summary for show %s", id), nil)
}

// IsType reports whether err is a CatalogError of the given type.
func IsType(err error, errorType string) bool {
	ce, ok := err.(*CatalogError)
	return ok && ce.Type == errorType
}
