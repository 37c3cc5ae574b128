package handlers

import (
	"net/http"

	"church-admin/internal/dto"
	"church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// MembershipHandler manages church members and invitations
type MembershipHandler struct {
	membershipService services.MembershipServiceInterface
}

func NewMembershipHandler(membershipService services.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// ListMembers returns every member of a church
//
// Method: GET /api/v1/churches/:churchId/members
// Roles: admin, secretary
func (h *MembershipHandler) ListMembers(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}

	members, err := h.membershipService.List(c.Request().Context(), churchID)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}
	if members == nil {
		members = []models.Membership{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.MemberListResponse{Members: members, Total: len(members)},
	})
}

// ChangeRole sets the role of a member
//
// Method: PUT /api/v1/churches/:churchId/members/:userId
// Roles: admin
//
// Error Responses:
//   - 404: Member not found
//   - 409: The member is the last admin
func (h *MembershipHandler) ChangeRole(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	membership, err := h.membershipService.ChangeRole(c.Request().Context(), churchID, c.Param("userId"), req.Role, actor)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchMemberMissing)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: membership, Message: "Role updated"})
}

// RemoveMember revokes a membership
//
// Method: DELETE /api/v1/churches/:churchId/members/:userId
// Roles: admin
func (h *MembershipHandler) RemoveMember(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.membershipService.Remove(c.Request().Context(), churchID, c.Param("userId"), actor); err != nil {
		return sendServiceError(c, err, errors.ChurchMemberMissing)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateInvitation invites an email address to join the church with a role.
// The token in the response is shown once.
//
// Method: POST /api/v1/churches/:churchId/invitations
// Roles: admin
func (h *MembershipHandler) CreateInvitation(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.InviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	created, err := h.membershipService.Invite(c.Request().Context(), churchID, req.Email, req.Role, actor)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.InvitationResponse{
			ID:        created.Invitation.ID.String(),
			Email:     created.Invitation.Email,
			Role:      created.Invitation.Role,
			ExpiresAt: created.Invitation.ExpiresAt,
			Token:     created.Token,
		},
		Message: "Invitation created",
	})
}

// ListInvitations returns pending invitations
//
// Method: GET /api/v1/churches/:churchId/invitations
// Roles: admin
func (h *MembershipHandler) ListInvitations(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}

	invitations, err := h.membershipService.ListPendingInvitations(c.Request().Context(), churchID)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}
	if invitations == nil {
		invitations = []models.Invitation{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.InvitationListResponse{Invitations: invitations, Total: len(invitations)},
	})
}

// AcceptInvitation joins the authenticated identity to the inviting church
//
// Method: POST /api/v1/invitations/accept
// Authentication: any valid identity token
//
// Error Responses:
//   - 403: Token email differs from the invited address
//   - 410: Invitation expired
//   - 422: Invalid or already used invitation
func (h *MembershipHandler) AcceptInvitation(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AcceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	membership, err := h.membershipService.AcceptInvitation(c.Request().Context(), req.Token, actor)
	if err != nil {
		return sendServiceError(c, err, errors.InvitationInvalid)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: membership, Message: "Invitation accepted"})
}
