package splitview

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/domain"
)

func writeSolid(t *testing.T, path string, w, h int, c domain.Color) {
	t.Helper()
	g := domain.NewGrid(w, h, domain.RGB)
	g.FillColumns(0, w, c)
	if err := imagefile.NewCodec().Save(path, g, imagefile.FormatFromPath(path)); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestComparer_LoadAndSaveIn(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.png")
	after := filepath.Join(dir, "after.png")
	writeSolid(t, before, 20, 10, domain.RGBColor(200, 0, 0))
	writeSolid(t, after, 16, 12, domain.RGBColor(0, 0, 200))

	c := New(WithFraction(0.25), WithAlign(AlignCrop))
	if err := c.Load(before, after); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	path, err := c.SaveIn(filepath.Join(dir, "out"), "png")
	if err != nil {
		t.Fatalf("SaveIn() error: %v", err)
	}
	if want := filepath.Join(dir, "out", "comparison_25%.png"); path != want {
		t.Errorf("SaveIn() path = %v, want %v", path, want)
	}

	g, _, err := imagefile.NewCodec().Load(path)
	if err != nil {
		t.Fatalf("reload output: %v", err)
	}
	if g.Width != 16 || g.Height != 10 {
		t.Errorf("output size = %dx%d, want 16x10", g.Width, g.Height)
	}
}

func TestComparer_SaveJPEGByExtension(t *testing.T) {
	dir := t.TempDir()
	c := New(WithJPEGQuality(70))
	a := domain.NewGrid(8, 8, domain.RGB)
	b := domain.NewGrid(8, 8, domain.RGB)
	if err := c.SetImages(a, b); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "cmp.jpg")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Errorf("output is not a JPEG")
	}
}

func TestComparer_Errors(t *testing.T) {
	dir := t.TempDir()
	c := New()

	if _, err := c.Render(); !errors.Is(err, domain.ErrNoImages) {
		t.Errorf("Render() before load = %v, want ErrNoImages", err)
	}
	if err := c.Save(filepath.Join(dir, "x.png")); !errors.Is(err, domain.ErrNoImages) {
		t.Errorf("Save() before load = %v, want ErrNoImages", err)
	}
	if err := c.Load(filepath.Join(dir, "missing.png"), filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load() with missing files should fail")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(junk, junk); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("Load() junk = %v, want ErrUnsupportedFormat", err)
	}
}

func TestComparer_BoundaryControls(t *testing.T) {
	c := New(WithFraction(0.4), WithStep(0.1))
	if got := c.Nudge(2); got < 0.599 || got > 0.601 {
		t.Errorf("Nudge(2) = %v, want 0.6", got)
	}
	if got := c.SetFraction(3); got != 1 {
		t.Errorf("SetFraction(3) = %v, want 1", got)
	}
	if got := c.Reset(); got != 0.4 {
		t.Errorf("Reset() = %v, want 0.4", got)
	}
	if got := c.Percent(); got != "40%" {
		t.Errorf("Percent() = %v, want 40%%", got)
	}
}

func TestComparer_Encode(t *testing.T) {
	c := New()
	if err := c.SetImages(domain.NewGrid(4, 4, domain.RGBA), domain.NewGrid(4, 4, domain.RGB)); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, "png"); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Encode() did not produce a PNG")
	}
}

func TestComparer_Watch(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.png")
	after := filepath.Join(dir, "after.png")
	writeSolid(t, before, 10, 10, domain.RGBColor(255, 0, 0))
	writeSolid(t, after, 10, 10, domain.RGBColor(0, 255, 0))

	c := New(WithDebounce(20 * time.Millisecond))
	changes := make(chan int, 16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Watch(ctx, before, after, func(context.Context) error {
			w, _, _ := c.session.Images()
			changes <- w.Width
			return nil
		})
	}()

	select {
	case w := <-changes:
		if w != 10 {
			t.Fatalf("initial width = %d, want 10", w)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no initial load")
	}

	writeSolid(t, before, 6, 6, domain.RGBColor(0, 0, 255))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case w := <-changes:
			if w == 6 {
				cancel()
				if err := <-errCh; err != nil {
					t.Errorf("Watch() error: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload after input change")
		}
	}
}
