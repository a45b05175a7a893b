// Package demo generates the sample before/after pair shown when no images
// have been supplied.
package demo

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bft-labs/splitview/internal/domain"
)

// Size of the sample images.
const (
	Width  = 400
	Height = 300
)

// labelScale enlarges the 7x13 bitmap font so labels stay legible.
const labelScale = 2

var (
	beforeLeft  = color.NRGBA{R: 100, G: 150, B: 255, A: 255}
	beforeRight = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	afterLeft   = color.NRGBA{R: 100, G: 255, B: 100, A: 255}
	afterRight  = color.NRGBA{R: 255, G: 255, B: 100, A: 255}
)

// Before returns the sample "before" image: blue left half, red right half,
// labelled BEFORE in white.
func Before() domain.Grid {
	img := halves(beforeLeft, beforeRight)
	drawLabel(img, "BEFORE", image.Pt(150, 150), color.White)
	return domain.DropAlpha(domain.FromImage(img))
}

// After returns the sample "after" image: green left half, yellow right half,
// labelled AFTER in black.
func After() domain.Grid {
	img := halves(afterLeft, afterRight)
	drawLabel(img, "AFTER", image.Pt(160, 150), color.Black)
	return domain.DropAlpha(domain.FromImage(img))
}

func halves(left, right color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, image.Rect(0, 0, Width/2, Height), image.NewUniform(left), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(Width/2, 0, Width, Height), image.NewUniform(right), image.Point{}, draw.Src)
	return img
}

// drawLabel renders text with its baseline-left corner at origin.
func drawLabel(dst draw.Image, text string, origin image.Point, c color.Color) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := metrics.Height.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	big := image.NewAlpha(image.Rect(0, 0, w*labelScale, h*labelScale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	top := origin.Y - metrics.Ascent.Ceil()*labelScale
	r := image.Rect(origin.X, top, origin.X+big.Rect.Dx(), top+big.Rect.Dy())
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, big, image.Point{}, draw.Over)
}
