package handlers

import (
	"fmt"
	"strings"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys populated by the auth middleware
const (
	UserIDContextKey     = "user_id"
	UserEmailContextKey  = "user_email"
	UserNameContextKey   = "user_name"
	ChurchIDContextKey   = "church_id"
	MembershipContextKey = "membership"
)

const dateLayout = "2006-01-02"

var (
	// ErrUnauthorized is returned when user context is invalid
	ErrUnauthorized = fmt.Errorf("unauthorized")

	ErrUnexpectedExchange = fmt.Errorf("exchange did not produce two movements")
)

// getActor builds the acting identity from the authenticated request
func getActor(c echo.Context) (models.Actor, error) {
	userID, ok := c.Get(UserIDContextKey).(string)
	if !ok || userID == "" {
		return models.Actor{}, ErrUnauthorized
	}

	email, _ := c.Get(UserEmailContextKey).(string)
	name, _ := c.Get(UserNameContextKey).(string)

	return models.Actor{
		UserID:    userID,
		Email:     email,
		Name:      name,
		IPAddress: getClientIP(c),
		UserAgent: c.Request().UserAgent(),
	}, nil
}

// getChurchID returns the church resolved by RequireMembership, falling
// back to the path parameter.
func getChurchID(c echo.Context) (uuid.UUID, error) {
	if id, ok := c.Get(ChurchIDContextKey).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Parse(c.Param("churchId"))
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// pageParams reads 1-based page and limit query parameters
func pageParams(c echo.Context, defaultLimit int) (page, limit, offset int) {
	page = getIntParam(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = getIntParam(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// parseTimeParam accepts a date or an RFC 3339 timestamp. Dates are
// midnight in loc.
func parseTimeParam(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// optionalTimeQuery parses the named query parameter when present
func optionalTimeQuery(c echo.Context, name string, loc *time.Location) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTimeParam(raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
