package handlers

import (
	"net/http"
	"time"

	"church-admin/internal/dto"
	"church-admin/internal/errors"
	"church-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const devTokenTTL = 8 * time.Hour

// DevHandler handles development-only endpoints.
// It is only registered outside production and when a local key exists.
type DevHandler struct {
	issuer *services.DevTokenIssuer
}

// NewDevHandler creates a new development handler
func NewDevHandler(issuer *services.DevTokenIssuer) *DevHandler {
	return &DevHandler{issuer: issuer}
}

// IssueToken mints an access token signed with the local development key
//
// Method: POST /api/v1/dev/token
// Environment: Development only
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	token, expiresAt, err := h.issuer.Issue(req.UserID, req.Email, req.Name, devTokenTTL)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DevTokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		},
	})
}
