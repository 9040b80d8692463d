package journal

// errors.go defines the errors returned by the journal entry API

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no entry has the requested id.
var ErrNotFound = errors.New("journal entry not found")

// APIError represents a structured error from the journal package.
type APIError struct {
	// code identifies the class of error and determines the HTTP status
	code ErrorCode

	// message is a human-readable error message
	message string

	// fieldErrors lists the fields that failed validation (validation errors only)
	fieldErrors []FieldError

	// wrapped is the optional underlying error
	wrapped error
}

func (e *APIError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *APIError) Code() ErrorCode           { return e.code }
func (e *APIError) Message() string           { return e.message }
func (e *APIError) FieldErrors() []FieldError { return e.fieldErrors }
func (e *APIError) Unwrap() error             { return e.wrapped }

// FieldError describes one failed field constraint.
type FieldError struct {
	ObjectName string `json:"objectName"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

// ErrorCode is the error key returned to the client (errorKey in the response body).
type ErrorCode string

const (
	// ErrCodeMalformedRequest is used when the request body is not valid JSON or a path parameter cannot be parsed
	ErrCodeMalformedRequest ErrorCode = "malformed"

	// ErrCodeValidation is used when the entry fails a field constraint (e.g. title missing)
	ErrCodeValidation ErrorCode = "validation"

	// ErrCodeIDExists is used when a create request already carries an id
	ErrCodeIDExists ErrorCode = "idexists"

	// ErrCodeIDNull is used when an update request does not carry an id
	ErrCodeIDNull ErrorCode = "idnull"

	// ErrCodeBadCriteria is used when a filter or sort parameter cannot be parsed
	ErrCodeBadCriteria ErrorCode = "badcriteria"

	// ErrCodeNotFound is used when no entry exists with the requested id
	ErrCodeNotFound ErrorCode = "notfound"

	// ErrCodeInternalError is used when an internal server error occurs
	ErrCodeInternalError ErrorCode = "internal"

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = "ratelimit"

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = "toolarge"
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewValidationError creates a validation error listing the failed fields.
func NewValidationError(msg string, fieldErrors ...FieldError) error {
	return &APIError{code: ErrCodeValidation, message: msg, fieldErrors: fieldErrors}
}

// WrapValidationError wraps an error raised by the store for a constraint violation
// (e.g. a not-null or length check) as a validation error.
func WrapValidationError(err error, msg string) error {
	return &APIError{code: ErrCodeValidation, message: msg, wrapped: err}
}

// NewIDExistsError is returned when a new entry already has an id.
func NewIDExistsError() error {
	return &APIError{code: ErrCodeIDExists, message: "A new " + entityName + " cannot already have an ID"}
}

// NewIDNullError is returned when an update does not identify the entry.
func NewIDNullError() error {
	return &APIError{code: ErrCodeIDNull, message: "Invalid id"}
}

// NewBadCriteriaError creates an error for filter and sort parameters that cannot be parsed.
func NewBadCriteriaError(msg string) error {
	return &APIError{code: ErrCodeBadCriteria, message: msg}
}

// NewNotFoundError creates an error for a missing entry.
func NewNotFoundError(id int64) error {
	return &APIError{code: ErrCodeNotFound, message: fmt.Sprintf("%s %d not found", entityName, id), wrapped: ErrNotFound}
}

// WrapInternalError wraps an existing error as an internal error.
//
// The returned error will have code ErrCodeInternalError.
func WrapInternalError(err error, msg string) error {
	return &APIError{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// wrapStoreError adds context to an error returned by the repository. API errors raised by the
// store (e.g. a rejected constraint) keep their code, anything else is an internal error.
func wrapStoreError(err error, msg string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return WrapInternalError(err, msg)
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &APIError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
func NewRequestTooLargeError(msg string) error {
	return &APIError{code: ErrCodeRequestTooLarge, message: msg}
}
