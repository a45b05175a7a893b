package ports

import "github.com/bft-labs/splitview/internal/domain"

// Resizer scales a grid to exact dimensions, keeping its channel layout.
type Resizer interface {
	Resize(g domain.Grid, width, height int) domain.Grid
}
