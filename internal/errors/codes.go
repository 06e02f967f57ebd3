package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Ingestion error codes (INGEST_*)
const (
	IngestEmptyFile      ErrorCode = "INGEST_001"
	IngestMissingColumns ErrorCode = "INGEST_002"
	IngestNoFile         ErrorCode = "INGEST_003"
	IngestFileTooLarge   ErrorCode = "INGEST_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCategory ErrorCode = "VALIDATION_005"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound  ErrorCode = "SESSION_001"
	SessionInvalidID ErrorCode = "SESSION_002"
	SessionNoData    ErrorCode = "SESSION_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound  ErrorCode = "TRANSACTION_001"
	TransactionInvalidID ErrorCode = "TRANSACTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemUnexpectedError   ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Ingestion errors
	IngestEmptyFile:      "Uploaded statement has no data rows",
	IngestMissingColumns: "Uploaded statement is missing required columns",
	IngestNoFile:         "No statement file was provided",
	IngestFileTooLarge:   "Uploaded statement exceeds the size limit",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCategory: "Unknown category label",

	// Session errors
	SessionNotFound:  "Session not found",
	SessionInvalidID: "Invalid session ID format",
	SessionNoData:    "Session has no ingested statement",

	// Transaction errors
	TransactionNotFound:  "Transaction not found",
	TransactionInvalidID: "Invalid transaction ID format",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemUnexpectedError:   "An unexpected error occurred",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
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
