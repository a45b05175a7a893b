// Package splitview composites two images into a before/after comparison
// split at a vertical boundary.
//
// Example usage:
//
//	out := splitview.Composite(before, after, 0.5)
//
// The result is before up to the boundary column and after from it onward,
// with a 3 pixel white seam. For file handling, alignment and watching, use
// the Comparer in github.com/bft-labs/splitview/pkg/splitview.
package splitview

import (
	"image"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/pkg/compositor"
)

// Grid is a row-major pixel grid with 3 (RGB) or 4 (RGBA) channels.
type Grid = domain.Grid

// Color is a channel tuple; alpha only applies to RGBA grids.
type Color = domain.Color

// Marker is the seam drawn at the boundary column.
type Marker = domain.Marker

// White is the default seam color.
var White = domain.White

// NewGrid allocates a zeroed grid.
func NewGrid(width, height, channels int) Grid {
	return domain.NewGrid(width, height, channels)
}

// FromImage converts any image to an RGBA grid.
func FromImage(img image.Image) Grid {
	return domain.FromImage(img)
}

// DefaultMarker returns the 3 pixel white seam.
func DefaultMarker() Marker {
	return domain.DefaultMarker()
}

// Composite splits a and b at floor(width*fraction) with the default seam.
func Composite(a, b Grid, fraction float64) Grid {
	return compositor.Composite(a, b, fraction)
}

// CompositeWithMarker is Composite with a custom seam. A zero-width marker
// draws no seam.
func CompositeWithMarker(a, b Grid, fraction float64, m Marker) Grid {
	return compositor.CompositeWithMarker(a, b, fraction, m)
}

// Version is the library version.
const Version = compositor.Version
