package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat ErrorCode = "AUTH_002"
	AuthNoUserIdentity     ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_005"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound      ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount ErrorCode = "EXPENSE_002"
	ExpenseInvalidID     ErrorCode = "EXPENSE_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidName   ErrorCode = "CATEGORY_003"
)

// Tag error codes (TAG_*)
const (
	TagNotFound      ErrorCode = "TAG_001"
	TagAlreadyExists ErrorCode = "TAG_002"
)

// Settings error codes (SETTINGS_*)
const (
	SettingsNotFound      ErrorCode = "SETTINGS_001"
	SettingsAlreadyExists ErrorCode = "SETTINGS_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthNoUserIdentity:     "User identification failed",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format",
	ValidationInvalidPeriod: "Invalid period kind",

	// Expense errors
	ExpenseNotFound:      "Expense not found",
	ExpenseInvalidAmount: "Expense amount must be a positive decimal",
	ExpenseInvalidID:     "Invalid expense ID format",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidName:   "Invalid category name",

	// Tag errors
	TagNotFound:      "Tag not found",
	TagAlreadyExists: "A tag with this name already exists",

	// Settings errors
	SettingsNotFound:      "Settings not found for this user",
	SettingsAlreadyExists: "Settings already exist for this user",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
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
