package apierrors

import (
	"errors"
	"net/http"

	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors.
// Every error carries exactly one error notification.
type ErrorResponse struct {
	Error        string               `json:"error"`
	Code         string               `json:"code,omitempty"`
	Notification *notify.Notification `json:"notification"`
	Details      any                  `json:"details,omitempty"`
	// Result is whatever the operation managed to produce before failing.
	Result any `json:"result,omitempty"`
}

// RespondWithError maps err and sends the sanitized JSON response.
//
// Example usage:
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	RespondWithResult(c, err, nil)
}

// RespondWithResult is RespondWithError for operations that may have partly
// succeeded; result is included in the body so the client can show it.
func RespondWithResult(c *gin.Context, err error, result any) {
	if err == nil {
		return
	}

	apiErr := MapError(err)

	// Processor has already logged the detailed error with full context.
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error:        apiErr.Message,
		Code:         apiErr.Code,
		Notification: notify.Error(apiErr.Message),
		Details:      apiErr.Details,
		Result:       result,
	})
}

// RespondWithValidationError handles Gin binding/validation errors and returns
// structured validation error responses.
//
// This should be used when c.ShouldBindJSON or similar binding functions fail.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErr := ValidationError(validationErrs)
		logger.Error(ctx, "Validation failed", err)

		c.JSON(apiErr.StatusCode, ErrorResponse{
			Error:        apiErr.Message,
			Code:         apiErr.Code,
			Notification: notify.Error(apiErr.Message),
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.Error(ctx, "Request binding failed", err)
	message := "Invalid request format. Please check your input."
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:        message,
		Code:         CodeInvalidInput,
		Notification: notify.Error(message),
	})
}
