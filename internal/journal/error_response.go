package journal

// error_response.go maps errors to the JSON error body returned to the client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/journey/internal/logger"
)

const (
	entityName    = "journalEntry"
	dtoObjectName = "journalEntryDTO"
)

// ErrorResponse is the body of every error returned by the API
type ErrorResponse struct {
	// A short description corresponding to the HTTP status code
	Title string `json:"title"`

	// The HTTP status code returned
	Status int `json:"status"`

	// Details about the error
	Detail string `json:"detail,omitempty"`

	// message key for clients that translate errors, e.g error.idexists
	Message string `json:"message"`

	// The entity the request was about (omitted for errors raised by middleware)
	EntityName string `json:"entityName,omitempty"`

	// Error key, see ErrorCode
	ErrorKey ErrorCode `json:"errorKey"`

	// The path that was requested
	Path string `json:"path"`

	// The HTTP method used to make the request e.g. GET, POST, etc
	Method string `json:"method"`

	// A unique identifier of the request, also logged server-side
	RequestID string `json:"requestId,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime"`

	// Field constraint failures (validation errors only)
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// MapErrorToResponse maps an error to the error response and establishes the HTTP status.
//
// Errors that are not APIErrors are not expected here: they are reported as internal errors and logged.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errorResponseFromAPIError(apiErr, r, requestID)
	}

	// fallback - this is not expected - if it happens, return an internal error response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return &ErrorResponse{
		Title:         http.StatusText(http.StatusInternalServerError),
		Status:        http.StatusInternalServerError,
		Detail:        "An internal error occurred",
		Message:       "error." + string(ErrCodeInternalError),
		ErrorKey:      ErrCodeInternalError,
		Path:          r.URL.Path,
		Method:        r.Method,
		RequestID:     requestID,
		ErrorDateTime: time.Now().UTC().Format(time.RFC3339),
	}
}

// errorResponseFromAPIError maps an APIError to the API error response.
// internal error details are not returned to the client, they are logged server-side
func errorResponseFromAPIError(err *APIError, r *http.Request, requestID string) *ErrorResponse {
	statusCode := StatusCode(err.Code())

	detail := err.Error()
	if statusCode == http.StatusInternalServerError {
		detail = "An internal error occurred"
	}

	resp := &ErrorResponse{
		Title:         http.StatusText(statusCode),
		Status:        statusCode,
		Detail:        detail,
		Message:       "error." + string(err.Code()),
		ErrorKey:      err.Code(),
		Path:          r.URL.Path,
		Method:        r.Method,
		RequestID:     requestID,
		ErrorDateTime: time.Now().UTC().Format(time.RFC3339),
		FieldErrors:   err.FieldErrors(),
	}

	switch err.Code() {
	case ErrCodeRateLimitExceeded, ErrCodeRequestTooLarge, ErrCodeInternalError:
	default:
		resp.EntityName = entityName
	}
	return resp
}

// StatusCode returns the HTTP status used for an error code.
func StatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeMalformedRequest, ErrCodeValidation, ErrCodeIDExists, ErrCodeIDNull, ErrCodeBadCriteria:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
