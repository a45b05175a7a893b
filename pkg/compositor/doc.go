// Package compositor builds before/after comparison images.
//
// The single operation of interest is [Composite]: given two pixel grids and a
// boundary fraction it returns a new grid showing the first grid left of the
// boundary column and the second grid from that column on, with a thin marker
// band drawn over the seam.
//
// # Usage
//
//	out := compositor.Composite(before, after, 0.5)
//
// Or with a custom marker:
//
//	out := compositor.CompositeWithMarker(before, after, 0.25, domain.Marker{
//	    Width: 5,
//	    Color: domain.RGBColor(255, 0, 0),
//	})
//
// # Guarantees
//
// The functions in this package never fail. Out-of-range fractions are clamped,
// inputs of different sizes are cropped from the top-left corner to their
// common extent, and zero-sized inputs yield an empty grid. Inputs are never
// modified and no state is kept between calls, so concurrent use is safe.
//
// Inputs with different channel layouts are brought to RGBA first.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package compositor
