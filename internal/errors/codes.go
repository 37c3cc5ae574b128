package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
	AuthNotAMember             ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Church error codes (CHURCH_*)
const (
	ChurchNotFound      ErrorCode = "CHURCH_001"
	ChurchInvalidID     ErrorCode = "CHURCH_002"
	ChurchMemberMissing ErrorCode = "CHURCH_003"
	ChurchLastAdmin     ErrorCode = "CHURCH_004"
)

// Movement error codes (MOVEMENT_*)
const (
	MovementNotFound         ErrorCode = "MOVEMENT_001"
	MovementInvalidAmount    ErrorCode = "MOVEMENT_002"
	MovementInvalidCurrency  ErrorCode = "MOVEMENT_003"
	MovementInvalidKind      ErrorCode = "MOVEMENT_004"
	MovementAlreadyCancelled ErrorCode = "MOVEMENT_005"
	MovementSameCurrency     ErrorCode = "MOVEMENT_006"
	MovementFutureDate       ErrorCode = "MOVEMENT_007"
)

// Invitation error codes (INVITATION_*)
const (
	InvitationInvalid       ErrorCode = "INVITATION_001"
	InvitationExpired       ErrorCode = "INVITATION_002"
	InvitationEmailMismatch ErrorCode = "INVITATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthNotAMember:             "You are not a member of this church",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	ChurchNotFound:      "Church not found",
	ChurchInvalidID:     "Invalid church ID format",
	ChurchMemberMissing: "Member not found in this church",
	ChurchLastAdmin:     "A church must keep at least one admin",

	MovementNotFound:         "Movement not found",
	MovementInvalidAmount:    "Movement amount must be positive",
	MovementInvalidCurrency:  "Unsupported currency",
	MovementInvalidKind:      "Movement kind must be INCOME or EXPENSE",
	MovementAlreadyCancelled: "Movement is already cancelled",
	MovementSameCurrency:     "Exchange currencies must differ",
	MovementFutureDate:       "Movement date is too far in the future",

	InvitationInvalid:       "Invitation is invalid or already used",
	InvitationExpired:       "Invitation has expired",
	InvitationEmailMismatch: "Invitation was issued for a different email address",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
