package middleware

import (
	stderrors "errors"

	"church-admin/internal/errors"
	"church-admin/internal/handlers"
	"church-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid identity provider
// access token. The token subject becomes the request's user ID.
func RequireAuth(tokenVerifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenVerifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenVerifier.VerifyAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(handlers.UserIDContextKey, claims.Subject)
			c.Set(handlers.UserEmailContextKey, claims.Email)
			c.Set(handlers.UserNameContextKey, claims.Name)

			return next(c)
		}
	}
}

// RequireMembership resolves the :churchId path parameter against the
// caller's memberships. With roles given, the membership must hold one of
// them. Must run after RequireAuth.
func RequireMembership(membershipService services.MembershipServiceInterface, ledgerLogger services.LedgerLoggerInterface, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(handlers.UserIDContextKey).(string)
			if !ok || userID == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			churchID, err := uuid.Parse(c.Param("churchId"))
			if err != nil {
				return handlers.SendError(c, errors.ChurchInvalidID)
			}

			ctx := c.Request().Context()
			membership, err := membershipService.GetMembership(ctx, churchID, userID)
			if err != nil {
				if stderrors.Is(err, services.ErrNotFound) {
					ledgerLogger.LogAuthorizationFailure(ctx, c.Request().Method+" "+c.Path(), churchID, userID)
					return handlers.SendError(c, errors.AuthNotAMember)
				}
				return handlers.SendSystemError(c, err)
			}

			if len(roles) > 0 && !membership.HasRole(roles...) {
				ledgerLogger.LogAuthorizationFailure(ctx, c.Request().Method+" "+c.Path(), churchID, userID)
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			c.Set(handlers.ChurchIDContextKey, churchID)
			c.Set(handlers.MembershipContextKey, membership)

			return next(c)
		}
	}
}
