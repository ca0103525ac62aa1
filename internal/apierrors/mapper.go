package apierrors

import (
	"context"
	"errors"
	"net/http"
	"strings"

	brandsProcessor "coordinator-console/internal/brands/processor"
	campaignsProcessor "coordinator-console/internal/campaigns/processor"
	"coordinator-console/internal/cards/preview"
	cardsProcessor "coordinator-console/internal/cards/processor"
	"coordinator-console/internal/cards/vcard"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/navigation"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/saga"
	"coordinator-console/internal/session"
	usersProcessor "coordinator-console/internal/users/processor"
)

// PartialDetails tells the client which steps of a multi-step write went through.
type PartialDetails struct {
	FailedStep string   `json:"failed_step"`
	Committed  []string `json:"committed"`
}

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var partial *saga.PartialFailure
	if errors.As(err, &partial) {
		mapped := MapError(partial.Err)
		if !partial.Partial() {
			return mapped
		}
		return &APIError{
			StatusCode: http.StatusBadGateway,
			Code:       CodePartialFailure,
			Message:    mapped.Message,
			Details:    PartialDetails{FailedStep: partial.FailedStep, Committed: partial.Committed},
			Err:        err,
		}
	}

	var backendErr *backend.APIError
	if errors.As(err, &backendErr) {
		return mapBackendError(backendErr)
	}

	switch {
	// Session errors
	case errors.Is(err, navigation.ErrLoginRequired),
		errors.Is(err, session.ErrInvalidSession),
		errors.Is(err, session.ErrExpiredSession),
		errors.Is(err, backend.ErrMissingToken):
		return Unauthorized(CodeLoginRequired, "Please log in to continue")

	case errors.Is(err, session.ErrUnknownRole):
		return Forbidden("Your account role is not supported by the console")

	case errors.Is(err, session.ErrIncompleteLogin),
		errors.Is(err, backend.ErrUnexpectedResponse):
		return BadGateway(CodeUpstreamMalformed, notify.GenericFailure, err)

	// Brand errors
	case errors.Is(err, brandsProcessor.ErrInvalidBrandID),
		errors.Is(err, campaignsProcessor.ErrInvalidBrandID),
		errors.Is(err, cardsProcessor.ErrInvalidBrandID):
		return BadRequest(CodeInvalidInput, "A valid brand is required")

	// Campaign errors
	case errors.Is(err, campaignsProcessor.ErrCampaignLocked):
		return Conflict(CodeCampaignLocked, "This campaign is live or deactivated and can no longer be edited")

	case errors.Is(err, campaignsProcessor.ErrInvalidStatusTransition):
		return Conflict(CodeInvalidStatus, "This status change is not allowed")

	case errors.Is(err, campaignsProcessor.ErrUnknownStatus):
		return BadRequest(CodeInvalidInput, "Status must be one of Draft, UAT, Prod, Deactivated")

	case errors.Is(err, campaignsProcessor.ErrInvalidCampaignID):
		return BadRequest(CodeInvalidInput, "A valid campaign is required")

	// User errors
	case errors.Is(err, usersProcessor.ErrInvalidUserRole):
		return BadRequest(CodeInvalidInput, "Role must be admin or nurse")

	case errors.Is(err, usersProcessor.ErrRoleNotAllowed):
		return Forbidden("You cannot create users with this role")

	case errors.Is(err, usersProcessor.ErrUnknownTab):
		return BadRequest(CodeInvalidInput, "Unknown user list")

	// Card errors
	case errors.Is(err, logo.ErrNotImage):
		return New(http.StatusUnsupportedMediaType, CodeNotImage, "Please choose an image file")

	case errors.Is(err, logo.ErrEmpty):
		return BadRequest(CodeInvalidInput, "The selected file is empty")

	case errors.Is(err, logo.ErrTooLarge):
		return New(http.StatusRequestEntityTooLarge, CodeFileTooLarge, "The selected image is too large")

	case errors.Is(err, preview.ErrUnknownSkin):
		return BadRequest(CodeUnknownSkin, "Preview skin must be android or ios")

	case errors.Is(err, vcard.ErrEmptyCard):
		return BadRequest(CodeInvalidInput, "Show at least the name or the phone number")

	case errors.Is(err, cardsProcessor.ErrNoChannel),
		errors.Is(err, cardsProcessor.ErrUnknownChannel),
		errors.Is(err, cardsProcessor.ErrMissingPatientURL):
		return BadRequest(CodeInvalidInput, "Choose sms or email and a generated card to share")

	case errors.Is(err, cardsProcessor.ErrShareFailed):
		return BadGateway(CodeUpstreamError, "The card could not be delivered "+strings.TrimPrefix(err.Error(), cardsProcessor.ErrShareFailed.Error()+" "), err)

	case errors.Is(err, context.DeadlineExceeded):
		return New(http.StatusGatewayTimeout, CodeUpstreamError, "The server took too long to respond. Please try again.")

	default:
		return mapExternalServiceError(err)
	}
}

// mapBackendError mirrors client errors of the coordination API and reports
// its server errors as a bad gateway. The backend message is kept.
func mapBackendError(err *backend.APIError) *APIError {
	message := err.Message
	if message == "" {
		message = notify.GenericFailure
	}
	switch {
	case err.StatusCode == http.StatusUnauthorized:
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeLoginRequired, Message: message, Err: err}
	case err.StatusCode == http.StatusForbidden:
		return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message, Err: err}
	case err.StatusCode == http.StatusNotFound:
		return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message, Err: err}
	case err.StatusCode >= 400 && err.StatusCode < 500:
		return &APIError{StatusCode: err.StatusCode, Code: CodeUpstreamError, Message: message, Err: err}
	default:
		return BadGateway(CodeUpstreamError, message, err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "twilio") || strings.Contains(errMsg, "sms") {
		return ServiceUnavailable(CodeUpstreamError, "SMS service is temporarily unavailable. Please try again later.", err)
	}

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(CodeUpstreamError, "Email service is temporarily unavailable. Please try again later.", err)
	}

	if strings.Contains(errMsg, "unreachable") {
		return BadGateway(CodeUpstreamError, notify.GenericFailure, err)
	}

	return InternalError(err)
}
