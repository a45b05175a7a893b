// Package imagefile decodes and encodes image files for splitview.
//
// PNG, JPEG and GIF come from the standard library; BMP, TIFF and WebP are
// registered from golang.org/x/image.
package imagefile

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// DefaultJPEGQuality is used when a Codec has no explicit quality.
const DefaultJPEGQuality = 90

// Codec implements ports.ImageCodec.
type Codec struct {
	// JPEGQuality is the JPEG encoder quality in [1, 100].
	JPEGQuality int
}

// NewCodec creates a codec with the default JPEG quality.
func NewCodec() *Codec {
	return &Codec{JPEGQuality: DefaultJPEGQuality}
}

// Decode reads one image from r.
func (c *Codec) Decode(r io.Reader) (domain.Grid, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return domain.Grid{}, "", fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
		}
		return domain.Grid{}, "", fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	g := domain.FromImage(img)
	if g.Empty() {
		return domain.Grid{}, format, domain.ErrEmptyImage
	}
	return g, format, nil
}

// Encode writes g in the given format. Unknown formats fall back to PNG.
func (c *Codec) Encode(w io.Writer, g domain.Grid, format string) error {
	img := g.ToImage()
	switch NormalizeFormat(format) {
	case FormatJPEG:
		q := c.JPEGQuality
		if q <= 0 || q > 100 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		return png.Encode(w, img)
	}
}

// Load opens and decodes the image at path.
func (c *Codec) Load(path string) (domain.Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Grid{}, "", err
	}
	defer f.Close()

	g, format, err := c.Decode(f)
	if err != nil {
		return domain.Grid{}, "", fmt.Errorf("%s: %w", path, err)
	}
	return g, format, nil
}

// Save encodes g into path, creating the parent directory if needed.
// The write goes to a temporary file first so watchers never see a partial image.
func (c *Codec) Save(path string, g domain.Grid, format string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".splitview-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	bw := bufio.NewWriter(tmp)
	if err := c.Encode(bw, g, format); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// NormalizeFormat maps format names and aliases to FormatPNG or FormatJPEG.
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "jpg", "jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) string {
	return NormalizeFormat(filepath.Ext(path))
}

// Extension returns the file extension (with dot) for an output format.
func Extension(format string) string {
	if NormalizeFormat(format) == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

var _ ports.ImageCodec = (*Codec)(nil)
