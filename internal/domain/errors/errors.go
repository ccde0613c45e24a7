// Package errors defines application errors that carry an HTTP status and a
// stable business error code for the API surface.
package errors

import (
	"net/http"

	"rxsupply/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"Product size variant not found",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_UNAVAILABLE",
		"Failed to load catalog",
		"",
	)

	// Invoice-related errors
	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"Invoice not found",
		"",
	)

	ErrInvoiceStateConflict = NewBaseError(
		http.StatusConflict,
		"INVOICE_STATE_CONFLICT",
		"Invoice was updated by another operation, reload and retry",
		"",
	)

	ErrInvoiceActionFailed = NewBaseError(
		http.StatusInternalServerError,
		"INVOICE_ACTION_FAILED",
		"Failed to process invoice action",
		"",
	)

	ErrPaymentLinkUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_LINK_UNAVAILABLE",
		"Payment gateway did not issue a payment link",
		"",
	)

	ErrPaymentLinkMissing = NewBaseError(
		http.StatusConflict,
		"PAYMENT_LINK_MISSING",
		"Invoice has no payment link yet",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database failure as a generic
// internal AppError while preserving the cause in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
