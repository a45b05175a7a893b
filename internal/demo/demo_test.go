package demo

import (
	"testing"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/pkg/compositor"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name        string
		grid        domain.Grid
		left, right domain.Color
		label       domain.Color
	}{
		{"before", Before(), domain.RGBColor(100, 150, 255), domain.RGBColor(255, 100, 100), domain.White},
		{"after", After(), domain.RGBColor(100, 255, 100), domain.RGBColor(255, 255, 100), domain.RGBColor(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grid
			if g.Width != Width || g.Height != Height || g.Channels != domain.RGB {
				t.Fatalf("grid = %dx%dx%d, want %dx%dx3", g.Width, g.Height, g.Channels, Width, Height)
			}
			if !tt.left.Matches(g.At(10, 10)) {
				t.Errorf("left half = %v, want %v", g.At(10, 10), tt.left)
			}
			if !tt.right.Matches(g.At(Width-10, Height-10)) {
				t.Errorf("right half = %v, want %v", g.At(Width-10, Height-10), tt.right)
			}

			labelled := 0
			for y := 120; y < 160; y++ {
				for x := 140; x < 260; x++ {
					if tt.label.Matches(g.At(x, y)) {
						labelled++
					}
				}
			}
			if labelled == 0 {
				t.Error("label pixels not found near the image center")
			}
		})
	}
}

func TestSamplesComposite(t *testing.T) {
	out := compositor.Composite(Before(), After(), 0.25)
	if !domain.RGBColor(100, 150, 255).Matches(out.At(10, 10)) {
		t.Errorf("left of boundary = %v, want before blue", out.At(10, 10))
	}
	if !domain.RGBColor(100, 255, 100).Matches(out.At(150, 10)) {
		t.Errorf("right of boundary = %v, want after green", out.At(150, 10))
	}
	if !domain.White.Matches(out.At(100, 10)) {
		t.Errorf("boundary column = %v, want marker", out.At(100, 10))
	}
}
