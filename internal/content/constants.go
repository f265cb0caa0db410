package content

// ==================== Configuration File Names ====================

// Default content file names, one JSON array per category
const (
	BuildingFileName   = "building.json"
	ResourcesFileName  = "resources.json"
	ComponentsFileName = "components.json"
	FoodsFileName      = "foods.json"
	CropsFileName      = "crops.json"
)

// ==================== Error Messages ====================

// File level error messages
const (
	ErrMsgReadFileFailed     = "%w: %s: %w"
	ErrMsgParseFileFailed    = "%w: %s: %w"
	ErrMsgElementFailed      = "%s: element %d: %w"
	ErrMsgFetchFailed        = "failed to fetch content from %s: %w"
	ErrMsgPrepareDestination = "failed to prepare content directory %s: %w"
	ErrMsgInstallFailed      = "failed to install fetched content into %s: %w"
	ErrMsgWorkingDir         = "failed to get working directory: %w"
)

// Element level error messages (wrapped around ErrMissingField / ErrInvalidField)
const (
	ErrFmtMissingFields = "%w: %s"
	ErrFmtInvalidField  = "%w: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCategoryLoaded      = "Content category loaded"
	LogMsgCategoryFailed      = "Content category failed to load, continuing with no entries"
	LogMsgElementSkipped      = "Skipping malformed content element"
	LogMsgDuplicateID         = "Duplicate content id, keeping the later entry"
	LogMsgRegistryLoaded      = "Content registry loaded"
	LogMsgRegistryLoading     = "Loading content registry"
	LogMsgFetchingContent     = "Fetching content"
	LogMsgFetchedContent      = "Fetched content"
	LogMsgSkippedFetchedEntry = "Not installing fetched entry"
)

// ==================== Metric Reasons ====================

// Values for the reason label on load failures
const (
	ReasonFileUnavailable = "file_unavailable"
	ReasonMalformedJSON   = "malformed_json"
	ReasonInvalidElement  = "invalid_element"
	ReasonUnknown         = "unknown"
)
