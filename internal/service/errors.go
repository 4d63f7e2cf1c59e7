package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Club Errors =====
var (
	ErrClubNotFound     = errors.New("club not found")
	ErrClubNameRequired = errors.New("club name is required")
	ErrClubNameTooLong  = errors.New("club name exceeds maximum length")
	ErrClubDescTooLong  = errors.New("club description exceeds maximum length")
	ErrNotClubManager   = errors.New("not authorized to manage this club")
)

// ===== Membership Errors =====
var (
	ErrManagerJoin        = errors.New("club manager cannot request to join")
	ErrAlreadyMember      = errors.New("already a member of this club")
	ErrAlreadyRequested   = errors.New("join request already sent to this club")
	ErrRequestNotFound    = errors.New("join request not found")
	ErrMembershipNotFound = errors.New("not a member of this club")
)

// ===== Event Errors =====
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventNameRequired    = errors.New("event name is required")
	ErrEventDateRequired    = errors.New("event date is required")
	ErrInvalidEventType     = errors.New("event type must be cash_game or tournament")
	ErrNotClubMember        = errors.New("must be a club member to register for its events")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("not registered for this event")
)
