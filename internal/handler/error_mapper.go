package handler

import (
	"errors"

	"github.com/clubdeck/api/internal/model"
	"github.com/clubdeck/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotClubManager),
		errors.Is(err, service.ErrNotClubMember),
		errors.Is(err, service.ErrManagerJoin):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrClubNotFound):
		return model.NewNotFoundError("club")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrRequestNotFound):
		return model.NewNotFoundError("join request")
	case errors.Is(err, service.ErrMembershipNotFound):
		return model.NewNotFoundError("membership")
	case errors.Is(err, service.ErrRegistrationNotFound):
		return model.NewNotFoundError("event registration")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyRequested),
		errors.Is(err, service.ErrAlreadyRegistered):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrClubNameRequired),
		errors.Is(err, service.ErrClubNameTooLong),
		errors.Is(err, service.ErrClubDescTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "club", Message: err.Error()}})

	case errors.Is(err, service.ErrEventNameRequired),
		errors.Is(err, service.ErrEventDateRequired),
		errors.Is(err, service.ErrInvalidEventType):
		return model.NewValidationError([]model.FieldError{{Field: "event", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
