package content

import "errors"

// Sentinel errors for content loading
var (
	// ErrFileUnavailable means a category file is missing or unreadable.
	ErrFileUnavailable = errors.New("content file unavailable")

	// ErrMalformedJSON means a category file is not a JSON array of objects.
	ErrMalformedJSON = errors.New("malformed content JSON")

	// ErrMissingField means an element lacks a required field, or has an empty id.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField means an element field has the wrong JSON type, or is
	// unknown while strict mode is on.
	ErrInvalidField = errors.New("invalid field")
)

var errNullDocument = errors.New("top-level value is null, want an array")

// failureReason maps a category load error to its metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrFileUnavailable):
		return ReasonFileUnavailable
	case errors.Is(err, ErrMalformedJSON):
		return ReasonMalformedJSON
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidField):
		return ReasonInvalidElement
	default:
		return ReasonUnknown
	}
}
