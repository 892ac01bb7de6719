package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMissing       = "AUTH_TOKEN_MISSING"
	ErrCodeAccountLocked      = "AUTH_ACCOUNT_LOCKED"
	ErrCodeSessionRevoked     = "AUTH_SESSION_REVOKED"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidEmail     = "VALIDATION_INVALID_EMAIL"
	ErrCodeInvalidPassword  = "VALIDATION_INVALID_PASSWORD"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidLanguage  = "VALIDATION_INVALID_LANGUAGE"
)

// Settings errors (SETTINGS_*)
const (
	ErrCodeLastLanguage   = "SETTINGS_LAST_LANGUAGE_ENABLED"
	ErrCodeHomeMenuHidden = "SETTINGS_HOME_MENU_REQUIRED"
	ErrCodeUnknownKey     = "SETTINGS_UNKNOWN_KEY"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeUserNotFound    = "RESOURCE_USER_NOT_FOUND"
	ErrCodeContentNotFound = "RESOURCE_CONTENT_NOT_FOUND"
	ErrCodeMessageNotFound = "RESOURCE_MESSAGE_NOT_FOUND"
	ErrCodeResourceExists  = "RESOURCE_ALREADY_EXISTS"
)

// Rate limiting errors (RATE_*)
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeEmailSendFailed = "INTERNAL_EMAIL_SEND_FAILED"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
