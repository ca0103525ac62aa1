package apierrors

import (
	"fmt"
	"net/http"

	"coordinator-console/internal/notify"
)

// Error codes returned to API clients
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeLoginRequired     = "LOGIN_REQUIRED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeNotImplemented    = "NOT_IMPLEMENTED"
	CodeCampaignLocked    = "CAMPAIGN_LOCKED"
	CodeInvalidStatus     = "INVALID_STATUS_TRANSITION"
	CodeNotImage          = "NOT_AN_IMAGE"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeUnknownSkin       = "UNKNOWN_SKIN"
	CodeChannelDisabled   = "CHANNEL_NOT_CONFIGURED"
	CodePartialFailure    = "PARTIAL_FAILURE"
	CodeUpstreamError     = "UPSTREAM_ERROR"
	CodeUpstreamMalformed = "UPSTREAM_MALFORMED_RESPONSE"
	CodeInternalError     = "INTERNAL_ERROR"
)

// APIError is an error that already knows how it is presented to clients.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Details is included in the response body when set.
	Details any
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func New(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return New(http.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) *APIError {
	return New(http.StatusUnauthorized, code, message)
}

func Forbidden(message string) *APIError {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func NotFound(code, message string) *APIError {
	return New(http.StatusNotFound, code, message)
}

func Conflict(code, message string) *APIError {
	return New(http.StatusConflict, code, message)
}

// NotImplemented is returned for console actions the backend has no call for.
func NotImplemented(message string) *APIError {
	return New(http.StatusNotImplemented, CodeNotImplemented, message)
}

// BadGateway wraps a failure of the remote coordination API.
func BadGateway(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Err: err}
}

func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError hides err behind the generic message.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    notify.GenericFailure,
		Err:        err,
	}
}
