package ports

import (
	"io"

	"github.com/bft-labs/splitview/internal/domain"
)

// ImageDecoder turns encoded image bytes into a pixel grid.
type ImageDecoder interface {
	// Decode reads one image and returns its grid and format name.
	// Unknown formats wrap domain.ErrUnsupportedFormat, corrupt data wraps
	// domain.ErrDecode.
	Decode(r io.Reader) (domain.Grid, string, error)
}

// ImageEncoder writes a pixel grid in a named format ("png", "jpeg").
type ImageEncoder interface {
	Encode(w io.Writer, g domain.Grid, format string) error
}

// ImageCodec combines decoding and encoding.
type ImageCodec interface {
	ImageDecoder
	ImageEncoder
}
