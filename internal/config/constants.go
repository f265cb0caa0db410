package config

// Accepted values for LOG_LEVEL and LOG_FORMAT
var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// Error messages
const (
	ErrMsgParseEnvFailed   = "failed to parse environment: %w"
	ErrMsgInvalidLogLevel  = "invalid LOG_LEVEL %q (expected one of: %s)"
	ErrMsgInvalidLogFormat = "invalid LOG_FORMAT %q (expected one of: %s)"
	ErrMsgEmptyContentFile = "content file name for %s must not be empty"
)

// Warning messages
const (
	WarnMsgContentDirMissing   = "CONTENT_DIR %q does not exist"
	WarnMsgSourceReplacesFiles = "CONTENT_SOURCE files replace same-named files already in CONTENT_DIR %q"
	WarnMsgStrictOutsideDev    = "CONTENT_STRICT is enabled outside development - a single bad entry empties its whole category"
)
