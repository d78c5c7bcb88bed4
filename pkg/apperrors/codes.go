package apperrors

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Cross-cutting codes.
const (
	// System and unknown failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business-logic codes
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

// Scheduling codes. The slot validator short-circuits on the first failing
// check, so at most one of these is ever returned per request.
const (
	CodeInvalidTimeFormat    ErrorCode = "INVALID_TIME_FORMAT"
	CodeOutsideBusinessHours ErrorCode = "OUTSIDE_BUSINESS_HOURS"
	CodeInvalidDateTime      ErrorCode = "INVALID_DATE_TIME"
	CodeClosedOnSunday       ErrorCode = "CLOSED_ON_SUNDAY"
	CodePastDateTime         ErrorCode = "PAST_DATE_TIME"
	CodeSlotUnavailable      ErrorCode = "SLOT_UNAVAILABLE"
)
