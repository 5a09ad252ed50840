package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication and session error codes (AUTH_* / SESSION_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	SessionMissing         ErrorCode = "SESSION_001"
	SessionExpired         ErrorCode = "SESSION_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_002"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferInvalidAmount     ErrorCode = "TRANSFER_001"
	TransferUnknownRecipient  ErrorCode = "TRANSFER_002"
	TransferInsufficientFunds ErrorCode = "TRANSFER_003"
	TransferSameAccount       ErrorCode = "TRANSFER_004"
)

// Loan error codes (LOAN_*)
const (
	LoanInvalidAmount ErrorCode = "LOAN_001"
	LoanNotEligible   ErrorCode = "LOAN_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountCloseMismatch ErrorCode = "ACCOUNT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid username or PIN",
	SessionMissing:         "No active session; log in first",
	SessionExpired:         "Session has expired; log in again",

	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",

	TransferInvalidAmount:     "Transfer amount must be positive",
	TransferUnknownRecipient:  "Recipient account not found",
	TransferInsufficientFunds: "Insufficient balance for this transfer",
	TransferSameAccount:       "Cannot transfer to your own account",

	LoanInvalidAmount: "Loan amount must be positive",
	LoanNotEligible:   "No deposit large enough to qualify for this loan",

	AccountNotFound:      "Account not found",
	AccountCloseMismatch: "Confirmation username or PIN does not match the active account",

	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
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
