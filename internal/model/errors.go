package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode is a machine-readable code carried alongside the HTTP status.
type ErrorCode int

const (
	// Authentication (1xxx)
	ErrCodeUnauthorized ErrorCode = 1001
	ErrCodeTokenExpired ErrorCode = 1002
	ErrCodeTokenInvalid ErrorCode = 1003
	ErrCodeLoginFailed  ErrorCode = 1004

	// Authorization (2xxx)
	ErrCodeForbidden  ErrorCode = 2001
	ErrCodeNotManager ErrorCode = 2002
	ErrCodeNotMember  ErrorCode = 2003

	// Resources (3xxx)
	ErrCodeNotFound      ErrorCode = 3001
	ErrCodeAlreadyExists ErrorCode = 3002
	ErrCodeConflict      ErrorCode = 3003

	// Validation (4xxx)
	ErrCodeValidation   ErrorCode = 4001
	ErrCodeInvalidInput ErrorCode = 4002

	// Internal (5xxx)
	ErrCodeInternal ErrorCode = 5001
	ErrCodeDatabase ErrorCode = 5002
)

// ProblemDetails is the RFC 9457 error body every failing response carries.
type ProblemDetails struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	Code     ErrorCode    `json:"code,omitempty"`
}

// FieldError pins a validation failure to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON sends the problem with the application/problem+json media type.
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// problem fills the shared fields; the type URI is derived from the slug.
func problem(slug, title string, status int, code ErrorCode, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.clubdeck.app/errors/" + slug,
		Title:  title,
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

func NewUnauthorizedError(detail string) *ProblemDetails {
	return problem("unauthorized", "Unauthorized", http.StatusUnauthorized, ErrCodeUnauthorized, detail)
}

func NewForbiddenError(detail string) *ProblemDetails {
	return problem("forbidden", "Forbidden", http.StatusForbidden, ErrCodeForbidden, detail)
}

func NewNotFoundError(resource string) *ProblemDetails {
	return problem("not-found", "Not Found", http.StatusNotFound, ErrCodeNotFound, resource+" not found")
}

func NewConflictError(detail string) *ProblemDetails {
	return problem("conflict", "Conflict", http.StatusConflict, ErrCodeConflict, detail)
}

func NewBadRequestError(detail string) *ProblemDetails {
	return problem("bad-request", "Bad Request", http.StatusBadRequest, ErrCodeInvalidInput, detail)
}

func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return problem("internal", "Internal Server Error", http.StatusInternalServerError, ErrCodeInternal, detail)
}

// NewValidationError summarizes the first field failure in the detail and
// attaches the full list.
func NewValidationError(errors []FieldError) *ProblemDetails {
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	p := problem("validation", "Validation Error", http.StatusUnprocessableEntity, ErrCodeValidation, detail)
	p.Errors = errors
	return p
}

func NewRateLimitError(retryAfter int) *ProblemDetails {
	p := problem("rate-limited", "Too Many Requests", http.StatusTooManyRequests, 0,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter))
	return p
}
