package segment

import "errors"

// Errors returned by boundary location.
var (
	// ErrInvalidKind indicates an unrecognized boundary-kind string.
	ErrInvalidKind = errors.New("invalid boundary kind")

	// ErrUnsupportedLocale indicates a locale identifier the engine
	// cannot be configured with.
	ErrUnsupportedLocale = errors.New("unsupported locale")
)
