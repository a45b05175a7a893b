package compositor

import (
	"math"

	"github.com/bft-labs/splitview/internal/domain"
)

// Composite merges a and b at the given boundary fraction using the default
// 3 pixel white marker.
func Composite(a, b domain.Grid, fraction float64) domain.Grid {
	return CompositeWithMarker(a, b, fraction, domain.DefaultMarker())
}

// CompositeWithMarker returns a new grid that shows a left of the boundary
// column and b from the boundary column on, with m drawn over the seam.
//
// Both inputs are cropped from their top-left corner to the shared minimum
// width and height first. Mixed RGB and RGBA inputs produce an RGBA result.
// The fraction is clamped to [0, 1]. Neither input is modified.
func CompositeWithMarker(a, b domain.Grid, fraction float64, m domain.Marker) domain.Grid {
	if a.Channels != b.Channels {
		var err error
		if a, b, err = domain.NormalizeChannels(a, b); err != nil {
			return domain.NewGrid(0, 0, domain.RGBA)
		}
	}

	w, h := min(a.Width, b.Width), min(a.Height, b.Height)
	if w <= 0 || h <= 0 {
		return domain.NewGrid(0, 0, a.Channels)
	}

	result := Crop(a, w, h)
	bc := BoundaryColumn(w, fraction)

	if bc < w {
		ch := a.Channels
		for y := 0; y < h; y++ {
			dst := result.Pix[y*result.Stride()+bc*ch : (y+1)*result.Stride()]
			srcOff := b.Offset(bc, y)
			copy(dst, b.Pix[srcOff:srcOff+len(dst)])
		}
	}

	if start, end, ok := MarkerBand(w, bc, m); ok {
		result.FillColumns(start, end, m.Color)
	}
	return result
}

// BoundaryColumn returns floor(width * fraction) with fraction clamped to [0, 1].
func BoundaryColumn(width int, fraction float64) int {
	if width <= 0 {
		return 0
	}
	bc := int(math.Floor(float64(width) * ClampFraction(fraction)))
	return min(max(bc, 0), width)
}

// ClampFraction limits f to [0, 1]. NaN maps to 0.
func ClampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// MarkerBand returns the half-open column range covered by the marker.
// No band is drawn when the marker is disabled or the boundary sits on the
// first column or on or past the last column.
func MarkerBand(width, boundaryColumn int, m domain.Marker) (start, end int, ok bool) {
	if m.Width <= 0 || boundaryColumn <= 0 || boundaryColumn >= width-1 {
		return 0, 0, false
	}
	start = boundaryColumn - m.Width/2
	end = min(width, start+m.Width)
	start = max(0, start)
	return start, end, start < end
}

// Crop copies the top-left w x h region of g into a new grid.
// The region is limited to the bounds of g.
func Crop(g domain.Grid, w, h int) domain.Grid {
	w, h = min(w, g.Width), min(h, g.Height)
	out := domain.NewGrid(w, h, g.Channels)
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*out.Stride():(y+1)*out.Stride()], g.Pix[y*g.Stride():])
	}
	return out
}
