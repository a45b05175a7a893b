package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
)

const halfBlock = "▀"

// previewSize fits a w x h image into a cols x rows cell area. Each cell
// shows two vertically stacked pixels.
func previewSize(w, h, cols, rows int) (int, int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	pw := min(cols, w)
	ph := pw * h / w
	if ph > rows*2 {
		ph = rows * 2
		pw = max(ph*w/h, 1)
	}
	ph = max(ph, 2)
	ph += ph % 2
	return pw, ph
}

// renderPreview downsamples g to fit the cell area and draws it with
// half-block characters: the top pixel is the foreground, the bottom pixel
// the background.
func renderPreview(g domain.Grid, cols, rows int, r ports.Resizer) string {
	pw, ph := previewSize(g.Width, g.Height, cols, rows)
	if pw == 0 {
		return ""
	}
	small := r.Resize(g, pw, ph)

	var b strings.Builder
	for y := 0; y < ph; y += 2 {
		for x := 0; x < pw; x++ {
			top := hexAt(small, x, y)
			bottom := hexAt(small, x, min(y+1, ph-1))
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
		if y+2 < ph {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hexAt(g domain.Grid, x, y int) string {
	px := g.At(x, y)
	return domain.RGBColor(px[0], px[1], px[2]).Hex()
}

// slider draws the boundary position as a bar of the given width.
func slider(fraction float64, width int) string {
	if width < 3 {
		width = 3
	}
	inner := width - 2
	pos := min(int(fraction*float64(inner)), inner-1)
	return "[" + strings.Repeat("━", pos) + "┃" + strings.Repeat("─", inner-pos-1) + "]"
}
