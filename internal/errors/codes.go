package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Card error codes (CARD_*)
const (
	CardNotFound           ErrorCode = "CARD_001"
	CardInvalidID          ErrorCode = "CARD_002"
	CardInvalidCycleConfig ErrorCode = "CARD_003"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound         ErrorCode = "STATEMENT_001"
	StatementValidationFailed ErrorCode = "STATEMENT_002"
	StatementNoPriorPeriod    ErrorCode = "STATEMENT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationOutOfRange:    "A field value is out of the allowed range",
	ValidationInvalidDate:   "A date field could not be parsed",

	CardNotFound:           "Card not found",
	CardInvalidID:          "Invalid card identifier",
	CardInvalidCycleConfig: "Card billing-cycle configuration is out of range",

	StatementNotFound:         "No statement found for the requested card and due date",
	StatementValidationFailed: "Statement draft failed validation",
	StatementNoPriorPeriod:    "No earlier statement exists for comparison",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An unexpected error occurred"
}
