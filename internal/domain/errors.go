package domain

import "errors"

// Domain errors represent error conditions of the host layer around the compositor.
// The compositor itself never fails; these are returned by decoding, configuration
// and session code and can be checked with errors.Is.
var (
	// ErrUnsupportedFormat is returned when an image format is not registered.
	ErrUnsupportedFormat = errors.New("splitview: unsupported image format")

	// ErrDecode is returned when image data is corrupt or unreadable.
	ErrDecode = errors.New("splitview: cannot decode image")

	// ErrChannelMismatch is returned when two grids cannot share a channel layout.
	ErrChannelMismatch = errors.New("splitview: channel layout mismatch")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("splitview: empty image")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("splitview: invalid configuration")

	// ErrNoImages is returned when rendering before both images are loaded.
	ErrNoImages = errors.New("splitview: before and after images are required")
)
