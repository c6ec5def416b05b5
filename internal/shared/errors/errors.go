// Package errors provides application-level error types and utilities.
// It defines common error types like validation, not found, conflict, and
// the payment-specific rejection types used by the renewal flow.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInternal          ErrorType = "internal_error"
	ErrorTypeBadRequest        ErrorType = "bad_request"
	ErrorTypeSignatureMismatch ErrorType = "signature_mismatch"
	ErrorTypePackageMismatch   ErrorType = "package_mismatch"
	ErrorTypeGateway           ErrorType = "gateway_error"
	ErrorTypeExternalBridge    ErrorType = "external_bridge_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewSignatureMismatchError creates an error for a payment confirmation whose
// signature does not match the expected keyed hash. Non-retryable.
func NewSignatureMismatchError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeSignatureMismatch, http.StatusUnauthorized, message, details)
}

// NewPackageMismatchError creates an error for a renewal request whose package
// is not applicable to the client. Non-retryable.
func NewPackageMismatchError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePackageMismatch, http.StatusConflict, message, details)
}

// NewGatewayError creates an error for a transient upstream payment gateway
// failure. Retryable by the caller.
func NewGatewayError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeGateway, http.StatusBadGateway, message, details)
}

// NewExternalBridgeError creates an error for a failed call to an external
// software's admin API.
func NewExternalBridgeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeExternalBridge, http.StatusBadGateway, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsSignatureMismatchError checks if the error is a signature mismatch error
func IsSignatureMismatchError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeSignatureMismatch
}

// IsPackageMismatchError checks if the error is a package mismatch error
func IsPackageMismatchError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypePackageMismatch
}

// IsGatewayError checks if the error is a transient gateway error
func IsGatewayError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeGateway
}

// IsExternalBridgeError checks if the error is an external bridge error
func IsExternalBridgeError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeExternalBridge
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation (repository tests)
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
