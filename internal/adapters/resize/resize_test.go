package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/splitview/internal/domain"
)

func TestParseKernel(t *testing.T) {
	for in, want := range map[string]Kernel{
		"":            Bilinear,
		"nearest":     Nearest,
		" CatmullRom": CatmullRom,
		"bilinear":    Bilinear,
	} {
		got, err := ParseKernel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKernel("lanczos")
	assert.Error(t, err)
}

func TestScaler_Resize(t *testing.T) {
	src := domain.NewGrid(8, 6, domain.RGB)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, domain.RGBColor(100, 150, 255))
		}
	}

	for _, k := range []Kernel{Nearest, Bilinear, CatmullRom} {
		out := New(k).Resize(src, 4, 3)
		assert.Equal(t, 4, out.Width, k)
		assert.Equal(t, 3, out.Height, k)
		assert.Equal(t, domain.RGB, out.Channels, k)
		px := out.At(1, 1)
		assert.InDelta(t, 100, int(px[0]), 1, k)
		assert.InDelta(t, 150, int(px[1]), 1, k)
		assert.InDelta(t, 255, int(px[2]), 1, k)
	}
}

func TestScaler_KeepsAlphaLayout(t *testing.T) {
	src := domain.NewGrid(2, 2, domain.RGBA)
	out := New(Nearest).Resize(src, 4, 4)
	assert.Equal(t, domain.RGBA, out.Channels)
	assert.Len(t, out.Pix, 4*4*4)
}

func TestScaler_SameSizeClones(t *testing.T) {
	src := domain.NewGrid(3, 3, domain.RGB)
	out := New(Bilinear).Resize(src, 3, 3)
	out.Pix[0] = 1
	assert.Equal(t, uint8(0), src.Pix[0])
}

func TestScaler_Degenerate(t *testing.T) {
	out := New(Bilinear).Resize(domain.NewGrid(0, 0, domain.RGB), 5, 5)
	assert.Equal(t, 5, out.Width)
	assert.Equal(t, domain.RGB, out.Channels)

	out = New(Bilinear).Resize(domain.NewGrid(4, 4, domain.RGB), 0, 3)
	assert.True(t, out.Empty())
}
