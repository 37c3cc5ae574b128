package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{AuthMissingToken, "Authorization token is required"},
		{AuthNotAMember, "You are not a member of this church"},
		{ValidationGeneral, "Validation failed"},
		{ChurchLastAdmin, "A church must keep at least one admin"},
		{MovementAlreadyCancelled, "Movement is already cancelled"},
		{InvitationExpired, "Invitation has expired"},
		{SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage("NOPE_999"))
	s.False(IsValidErrorCode("NOPE_999"))
}

func (s *CodesTestSuite) TestEveryCodeHasMessageAndStatus() {
	for code := range errorMessages {
		s.True(IsValidErrorCode(code))
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, "code %s", code)
	}
}

func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{MovementInvalidCurrency, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthNotAMember, http.StatusForbidden},
		{InvitationEmailMismatch, http.StatusForbidden},
		{MovementNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{MovementAlreadyCancelled, http.StatusConflict},
		{ChurchLastAdmin, http.StatusConflict},
		{InvitationExpired, http.StatusGone},
		{MovementSameCurrency, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}
