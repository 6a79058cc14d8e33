package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid = "CONFIG_INVALID"

	// Data errors
	ErrDatabaseError   = "DATABASE_ERROR"
	ErrDatabaseMissing = "DATABASE_MISSING"
	ErrChannelNotFound = "CHANNEL_NOT_FOUND"
	ErrTrackNotFound   = "TRACK_NOT_FOUND"

	// Import errors
	ErrFileReadError     = "FILE_READ_ERROR"
	ErrUnsupportedFormat = "UNSUPPORTED_FORMAT"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnRecordsSkipped = "RECORDS_SKIPPED"
)
