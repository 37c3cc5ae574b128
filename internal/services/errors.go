package services

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("not allowed to perform this operation")
	ErrInvalidYear             = errors.New("invalid report year")
	ErrInvalidMovement         = errors.New("invalid movement")
	ErrFutureMovement          = errors.New("movement date is too far in the future")
	ErrAlreadyCancelled        = errors.New("movement already cancelled")
	ErrSameCurrency            = errors.New("exchange currencies must differ")
	ErrLastAdmin               = errors.New("church must keep at least one admin")
	ErrInvalidRole             = errors.New("invalid church role")
	ErrInvalidInvitation       = errors.New("invitation is invalid or already used")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match the signed-in user")
	ErrInvalidAuditLog         = errors.New("invalid audit log")
	ErrAuditDateRange          = errors.New("invalid date range: start date must be before end date")
)
