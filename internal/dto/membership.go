package dto

import (
	"time"

	"church-admin/internal/models"
)

// Membership Request DTOs

// ChangeRoleRequest represents the request payload for changing a member's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,church_role"`
}

// InviteMemberRequest represents the request payload for inviting someone to a church
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,church_role"`
}

// AcceptInvitationRequest represents the request payload for accepting an invitation
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// Membership Response DTOs

// MemberListResponse represents the members of a church
type MemberListResponse struct {
	Members []models.Membership `json:"members"`
	Total   int                 `json:"total"`
}

// InvitationResponse is returned once, when the invitation is created.
// The token cannot be recovered afterwards.
type InvitationResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
}

// InvitationListResponse represents the pending invitations of a church
type InvitationListResponse struct {
	Invitations []models.Invitation `json:"invitations"`
	Total       int                 `json:"total"`
}
