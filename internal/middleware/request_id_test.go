package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"church-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceObservation struct {
	fromEcho    string
	fromRequest interface{}
	header      string
}

func runRequestID(t *testing.T, inbound string) traceObservation {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/churches/central/balance", nil)
	if inbound != "" {
		req.Header.Set(TraceIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var obs traceObservation
	err := RequestID()(func(c echo.Context) error {
		obs.fromEcho = GetTraceID(c)
		obs.fromRequest = c.Request().Context().Value(services.CorrelationIDKey)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	obs.header = rec.Header().Get(TraceIDHeader)
	return obs
}

func TestRequestID_InboundTraceIDs(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		reused  bool
	}{
		{name: "missing header", inbound: "", reused: false},
		{name: "frontend uuid", inbound: "8c1d1c4e-2f6a-4c2b-9a57-0f1b7f0e9d11", reused: true},
		{name: "proxy token", inbound: "lb-01:req.4471_a", reused: true},
		{name: "log injection", inbound: "abc\nlevel=ERROR msg=forged", reused: false},
		{name: "spaces", inbound: "trace id", reused: false},
		{name: "too long", inbound: strings.Repeat("a", 65), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := runRequestID(t, tt.inbound)

			if tt.reused {
				assert.Equal(t, tt.inbound, obs.fromEcho)
			} else {
				_, err := uuid.Parse(obs.fromEcho)
				assert.NoError(t, err, "expected a generated uuid, got %q", obs.fromEcho)
			}
			assert.Equal(t, obs.fromEcho, obs.header)
			assert.Equal(t, obs.fromEcho, obs.fromRequest)
		})
	}
}

func TestRequestID_FreshIDPerRequest(t *testing.T) {
	first := runRequestID(t, "")
	second := runRequestID(t, "")

	assert.NotEqual(t, first.fromEcho, second.fromEcho)
}

func TestGetTraceID_OutsideMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))

	c.Set(TraceIDContextKey, 42)
	assert.Empty(t, GetTraceID(c))
}
