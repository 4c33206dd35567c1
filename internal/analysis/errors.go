package analysis

import "errors"

var (
	ErrURLRequired       = errors.New("analysis: url is required")
	ErrInvalidURL        = errors.New("analysis: url must be an http or https link")
	ErrUpstreamFailed    = errors.New("analysis: upstream analysis failed")
	ErrNotFound          = errors.New("analysis: not found")
	ErrForbidden         = errors.New("analysis: not the owner")
	ErrInvalidPayload    = errors.New("analysis: invalid payload")
	ErrExternalIDMissing = errors.New("analysis: external id is required")
	ErrInvalidStatus     = errors.New("analysis: invalid status filter")
	ErrInvalidPlatform   = errors.New("analysis: invalid platform filter")
)
