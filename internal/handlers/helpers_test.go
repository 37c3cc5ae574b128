package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	apierrors "church-admin/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope decodes a SuccessResponse while keeping Data raw
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context. body may be nil, a string or any
// JSON-encodable value.
func newContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("User-Agent", "handler-test")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate sets what RequireAuth and RequireMembership would
func authenticate(c echo.Context, userID string, churchID uuid.UUID) {
	c.Set(UserIDContextKey, userID)
	c.Set(UserEmailContextKey, userID+"@example.com")
	c.Set(UserNameContextKey, "Test User")
	c.Set(TraceIDContextKey, "trace-123")
	if churchID != uuid.Nil {
		c.Set(ChurchIDContextKey, churchID)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	t.Helper()
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
