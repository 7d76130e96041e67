package errors

import (
	"net/http"
	"strings"

	"quickeats/internal/errors"
)

// StatusValidationFailed is the status returned for malformed input.
// Clients of the mobile app treat 406 as "fix the form and resubmit".
const StatusValidationFailed = http.StatusNotAcceptable

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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(StatusValidationFailed, "VALIDATION_ERROR", "Validation failed", "")
	ErrInvalidMobile    = NewBaseError(StatusValidationFailed, "INVALID_MOBILE", "Invalid mobile number", "")
	ErrProductNotInShop = NewBaseError(StatusValidationFailed, "PRODUCT_NOT_IN_SHOP", "Product does not belong to the selected shop", "")
	ErrEmptyUpdate      = NewBaseError(StatusValidationFailed, "EMPTY_UPDATE", "At least one field must be provided", "")

	// Authentication
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", "")
	ErrTokenExpired = NewBaseError(http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired", "")
	ErrInvalidOTP   = NewBaseError(http.StatusUnauthorized, "INVALID_OTP", "Invalid or expired OTP", "")
	ErrOTPThrottled = NewBaseError(http.StatusTooManyRequests, "OTP_THROTTLED", "An OTP was sent recently, please wait before requesting another", "")
	ErrOTPDelivery  = NewBaseError(http.StatusBadGateway, "OTP_DELIVERY_FAILED", "Failed to send OTP", "")

	// Lookup
	ErrCustomerNotFound = NewBaseError(http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found", "")
	ErrShopNotFound     = NewBaseError(http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found", "")
	ErrProductNotFound  = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrVariantNotFound  = NewBaseError(http.StatusNotFound, "VARIANT_NOT_FOUND", "Product variant not found", "")

	ErrCustomerAlreadyExists = NewBaseError(http.StatusConflict, "CUSTOMER_ALREADY_EXISTS", "A customer with this email or mobile already exists", "")

	// Settlement
	ErrUpstreamFailure          = NewBaseError(http.StatusBadGateway, "UPSTREAM_FAILURE", "Unable to calculate distance/time", "")
	ErrDeliveryFeeConfigMissing = NewBaseError(http.StatusInternalServerError, "DELIVERY_FEE_CONFIG_MISSING", "Delivery fee configuration is missing", "")
	ErrTransactionFailed        = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Failed to save the order", "")

	// General errors
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
)

// NewUpstreamFailureError reports an unusable distance lookup, echoing the provider status.
func NewUpstreamFailureError(status string) *BaseError {
	if status == "" {
		status = "UNKNOWN"
	}

	return &BaseError{
		httpCode:  ErrUpstreamFailure.httpCode,
		errorCode: ErrUpstreamFailure.errorCode,
		message:   ErrUpstreamFailure.message + ": " + status,
		details:   status,
	}
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field of a request.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return StatusValidationFailed
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.errorCode
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.message
}

// Details returns the failing fields as a single line
func (e *ValidationError) Details() string {
	return strings.TrimPrefix(e.Error(), "validation failed: ")
}

// Fields returns every failing field.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Is lets errors.Is(err, ErrValidationFailed) match aggregated validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
