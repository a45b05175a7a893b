// Package resize scales pixel grids with golang.org/x/image/draw.
package resize

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
)

// Kernel names an interpolation kernel.
type Kernel string

// Supported kernels.
const (
	Nearest    Kernel = "nearest"
	Bilinear   Kernel = "bilinear"
	CatmullRom Kernel = "catmullrom"
)

// ParseKernel validates a kernel name. An empty name selects Bilinear.
func ParseKernel(name string) (Kernel, error) {
	switch k := Kernel(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return Bilinear, nil
	case Nearest, Bilinear, CatmullRom:
		return k, nil
	default:
		return "", fmt.Errorf("unknown resize kernel %q (want nearest, bilinear or catmullrom)", name)
	}
}

func (k Kernel) scaler() xdraw.Scaler {
	switch k {
	case Nearest:
		return xdraw.NearestNeighbor
	case CatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// Scaler implements ports.Resizer.
type Scaler struct {
	Kernel Kernel
}

// New creates a Scaler for the given kernel.
func New(k Kernel) *Scaler {
	return &Scaler{Kernel: k}
}

// Resize returns g scaled to width x height with the same channel layout.
// A grid that already has the requested size is cloned.
func (s *Scaler) Resize(g domain.Grid, width, height int) domain.Grid {
	if width <= 0 || height <= 0 || g.Empty() {
		return domain.NewGrid(max(width, 0), max(height, 0), g.Channels)
	}
	if g.Width == width && g.Height == height {
		return g.Clone()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	s.Kernel.scaler().Scale(dst, dst.Bounds(), g.ToImage(), image.Rect(0, 0, g.Width, g.Height), xdraw.Src, nil)

	out := domain.FromImage(dst)
	if g.Channels == domain.RGB {
		return domain.DropAlpha(out)
	}
	return out
}

var _ ports.Resizer = (*Scaler)(nil)
