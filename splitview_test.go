package splitview

import (
	"image"
	"image/color"
	"testing"
)

func TestComposite_FromImages(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 10, 2))
	b := image.NewNRGBA(image.Rect(0, 0, 10, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			a.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			b.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}

	out := Composite(FromImage(a), FromImage(b), 0.5)
	if out.Width != 10 || out.Height != 2 || out.Channels != 4 {
		t.Fatalf("out = %dx%dx%d", out.Width, out.Height, out.Channels)
	}

	img := out.ToImage()
	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 255, A: 255}},
		{3, color.NRGBA{R: 255, A: 255}},
		{4, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{5, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{6, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{7, color.NRGBA{B: 255, A: 255}},
		{9, color.NRGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 1); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCompositeWithMarker_NoSeam(t *testing.T) {
	a := NewGrid(10, 1, 3)
	b := NewGrid(10, 1, 3)
	b.FillColumns(0, 10, White)

	out := CompositeWithMarker(a, b, 0.5, Marker{})
	for x := 0; x < 10; x++ {
		want := uint8(0)
		if x >= 5 {
			want = 255
		}
		if got := out.At(x, 0)[0]; got != want {
			t.Errorf("column %d = %d, want %d", x, got, want)
		}
	}
	if DefaultMarker().Width != 3 {
		t.Errorf("DefaultMarker().Width = %d, want 3", DefaultMarker().Width)
	}
}
