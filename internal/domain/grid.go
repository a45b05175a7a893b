package domain

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// Channel layouts supported by Grid.
const (
	RGB  = 3
	RGBA = 4
)

// Grid is a rectangular pixel grid stored row-major.
// Each pixel occupies Channels consecutive samples in Pix, so the sample
// offset of pixel (x, y) is y*Stride() + x*Channels.
type Grid struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewGrid allocates a zeroed grid. Negative dimensions are treated as zero.
func NewGrid(width, height, channels int) Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Stride returns the number of samples in one row.
func (g Grid) Stride() int {
	return g.Width * g.Channels
}

// Empty reports whether the grid has no pixels.
func (g Grid) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Offset returns the index of the first sample of pixel (x, y).
func (g Grid) Offset(x, y int) int {
	return y*g.Stride() + x*g.Channels
}

// At returns the samples of pixel (x, y). The returned slice aliases Pix.
func (g Grid) At(x, y int) []uint8 {
	i := g.Offset(x, y)
	return g.Pix[i : i+g.Channels : i+g.Channels]
}

// Set writes a color into pixel (x, y). The alpha sample is ignored for RGB grids.
func (g Grid) Set(x, y int, c Color) {
	c.put(g.At(x, y))
}

// FillColumns paints every pixel in the half-open column range [x0, x1) with c.
func (g Grid) FillColumns(x0, x1 int, c Color) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > g.Width {
		x1 = g.Width
	}
	for y := 0; y < g.Height; y++ {
		for x := x0; x < x1; x++ {
			g.Set(x, y, c)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := Grid{Width: g.Width, Height: g.Height, Channels: g.Channels}
	out.Pix = make([]uint8, len(g.Pix))
	copy(out.Pix, g.Pix)
	return out
}

// Equal reports whether both grids have the same shape and samples.
func (g Grid) Equal(o Grid) bool {
	return g.Width == o.Width &&
		g.Height == o.Height &&
		g.Channels == o.Channels &&
		bytes.Equal(g.Pix, o.Pix)
}

// FromImage converts any image into a 4-channel, non-premultiplied grid.
// The result is anchored at (0, 0) regardless of the source bounds.
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	g := NewGrid(b.Dx(), b.Dy(), RGBA)
	for y := 0; y < g.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+g.Stride()]
		copy(g.Pix[y*g.Stride():], src)
	}
	return g
}

// ToImage converts the grid into an *image.NRGBA.
// RGB grids are expanded with an opaque alpha channel.
func (g Grid) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.At(x, y)
			a := uint8(255)
			if g.Channels == RGBA {
				a = p[3]
			}
			img.SetNRGBA(x, y, color.NRGBA{R: p[0], G: p[1], B: p[2], A: a})
		}
	}
	return img
}

// AddAlpha returns a 4-channel copy of an RGB grid with opaque alpha.
// RGBA grids are cloned unchanged.
func AddAlpha(g Grid) Grid {
	if g.Channels != RGB {
		return g.Clone()
	}
	out := NewGrid(g.Width, g.Height, RGBA)
	for i, j := 0, 0; i < len(g.Pix); i, j = i+RGB, j+RGBA {
		copy(out.Pix[j:j+RGB], g.Pix[i:i+RGB])
		out.Pix[j+3] = 255
	}
	return out
}

// DropAlpha returns a 3-channel copy of an RGBA grid.
// RGB grids are cloned unchanged.
func DropAlpha(g Grid) Grid {
	if g.Channels != RGBA {
		return g.Clone()
	}
	out := NewGrid(g.Width, g.Height, RGB)
	for i, j := 0, 0; i < len(g.Pix); i, j = i+RGBA, j+RGB {
		copy(out.Pix[j:j+RGB], g.Pix[i:i+RGB])
	}
	return out
}

// NormalizeChannels brings two grids to a shared channel layout.
// When either grid carries alpha both are returned as RGBA, otherwise both
// are returned as RGB. Any other channel count yields ErrChannelMismatch.
func NormalizeChannels(a, b Grid) (Grid, Grid, error) {
	for _, g := range []Grid{a, b} {
		if g.Channels != RGB && g.Channels != RGBA {
			return Grid{}, Grid{}, ErrChannelMismatch
		}
	}
	if a.Channels == b.Channels {
		return a, b, nil
	}
	return AddAlpha(a), AddAlpha(b), nil
}
