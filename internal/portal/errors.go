package portal

import "errors"

// Sentinel errors for the portal package.
var (
	// ErrNotFound is returned when a request record does not exist.
	ErrNotFound = errors.New("request not found")

	// ErrInvalidMediaType is returned when a request carries an
	// unrecognized media type.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrMissingDiscriminator is returned when a request lacks the media
	// ID its type requires.
	ErrMissingDiscriminator = errors.New("request missing media id for its type")
)
