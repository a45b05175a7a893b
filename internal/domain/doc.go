// Package domain contains the core value types for splitview.
//
// This package is the innermost layer of the module. It has no dependencies on
// infrastructure concerns (files, terminals, logging) and holds only the pixel
// grid model shared by the compositor and the host layer.
//
// # Types
//
//   - [Grid]: a row-major pixel grid with a fixed channel count (RGB or RGBA)
//   - [Color]: a channel tuple used for the boundary marker
//   - [Marker]: width and color of the seam drawn at the boundary
//
// # Design Principles
//
// Grids are plain values. Operations that produce a new grid allocate fresh
// sample storage so callers never observe their inputs being mutated.
package domain
