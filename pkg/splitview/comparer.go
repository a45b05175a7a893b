package splitview

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/adapters/resize"
	"github.com/bft-labs/splitview/internal/app"
	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
	"github.com/bft-labs/splitview/pkg/log"
	"github.com/bft-labs/splitview/plugins/inputwatcher"
)

// Grid is a row-major pixel grid.
type Grid = domain.Grid

// Channel layouts accepted by NewGrid.
const (
	RGB  = domain.RGB
	RGBA = domain.RGBA
)

// NewGrid allocates a zeroed grid.
func NewGrid(width, height, channels int) Grid {
	return domain.NewGrid(width, height, channels)
}

// Comparer is a before/after comparison that can be embedded in other
// applications. Use New() to create one, then Load or SetImages.
// It is safe for concurrent use.
type Comparer struct {
	opts    options
	codec   *imagefile.Codec
	scaler  *resize.Scaler
	session *app.Session
	logger  ports.Logger
}

// New creates a Comparer with no images loaded.
func New(opts ...Option) *Comparer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	codec := imagefile.NewCodec()
	if o.jpegQuality > 0 {
		codec.JPEGQuality = o.jpegQuality
	}
	scaler := resize.New(o.kernel)

	session := app.NewSession(app.SessionConfig{
		Align:    o.align,
		Marker:   o.marker,
		Fraction: o.fraction,
		Step:     o.step,
	}, scaler, codec, o.logger)

	return &Comparer{
		opts:    o,
		codec:   codec,
		scaler:  scaler,
		session: session,
		logger:  o.logger,
	}
}

// Load decodes both image files and sets them as the comparison inputs.
func (c *Comparer) Load(beforePath, afterPath string) error {
	before, _, err := c.codec.Load(beforePath)
	if err != nil {
		return fmt.Errorf("load before image: %w", err)
	}
	after, _, err := c.codec.Load(afterPath)
	if err != nil {
		return fmt.Errorf("load after image: %w", err)
	}
	return c.session.SetImages(before, after)
}

// SetImages sets decoded inputs. The grids are copied, not retained.
func (c *Comparer) SetImages(before, after Grid) error {
	return c.session.SetImages(before, after)
}

// Loaded reports whether both images are set.
func (c *Comparer) Loaded() bool { return c.session.Loaded() }

// Fraction returns the current boundary fraction.
func (c *Comparer) Fraction() float64 { return c.session.Fraction() }

// SetFraction clamps and stores the boundary, returning the stored value.
func (c *Comparer) SetFraction(f float64) float64 { return c.session.SetFraction(f) }

// Nudge moves the boundary by steps increments.
func (c *Comparer) Nudge(steps int) float64 { return c.session.Nudge(steps) }

// Reset restores the starting boundary.
func (c *Comparer) Reset() float64 { return c.session.Reset() }

// Percent formats the boundary as a whole percentage.
func (c *Comparer) Percent() string { return c.session.Percent() }

// Caption describes the comparison, e.g. "Comparison (Boundary at 50%)".
func (c *Comparer) Caption() string { return c.session.Caption() }

// FileName returns the output name for the boundary with the given extension.
func (c *Comparer) FileName(ext string) string { return c.session.FileName(ext) }

// Render composites the current inputs at the current boundary.
func (c *Comparer) Render() (Grid, error) { return c.session.Render() }

// Encode renders and writes the comparison to w as png or jpeg.
func (c *Comparer) Encode(w io.Writer, format string) error {
	return c.session.Export(w, format)
}

// Save renders and writes the comparison to path. The format follows the
// file extension.
func (c *Comparer) Save(path string) error {
	out, err := c.session.Render()
	if err != nil {
		return err
	}
	format := imagefile.FormatFromPath(path)
	if err := c.codec.Save(path, out, format); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	c.logger.Info("comparison saved",
		log.String("path", path),
		log.Float64("fraction", c.session.Fraction()))
	return nil
}

// SaveIn writes the comparison into dir under its boundary file name, e.g.
// comparison_50%.png, and returns the path written.
func (c *Comparer) SaveIn(dir, format string) (string, error) {
	path := filepath.Join(dir, c.session.FileName(imagefile.Extension(format)))
	if err := c.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// Resizer returns the scaler used for alignment.
func (c *Comparer) Resizer() ports.Resizer { return c.scaler }

// Codec returns the image codec used for loading and saving.
func (c *Comparer) Codec() *imagefile.Codec { return c.codec }

// StartWatch loads both inputs, then keeps reloading them whenever either
// file changes. onChange runs after each successful reload, including the
// first. The returned stop function shuts the watcher down.
func (c *Comparer) StartWatch(ctx context.Context, beforePath, afterPath string, onChange func(context.Context) error) (func(context.Context) error, error) {
	wcfg := inputwatcher.DefaultConfig()
	wcfg.DebounceDelay = c.opts.debounce
	w := inputwatcher.New(
		wcfg,
		c.codec,
		func(ctx context.Context, before, after domain.Grid) error {
			if err := c.session.SetImages(before, after); err != nil {
				return err
			}
			if onChange == nil {
				return nil
			}
			return onChange(ctx)
		},
		c.logger,
	)
	if err := w.Initialize(ctx, beforePath, afterPath); err != nil {
		return nil, err
	}
	return w.Shutdown, nil
}

// Watch runs StartWatch and blocks until ctx is cancelled.
func (c *Comparer) Watch(ctx context.Context, beforePath, afterPath string, onChange func(context.Context) error) error {
	stop, err := c.StartWatch(ctx, beforePath, afterPath, onChange)
	if err != nil {
		return err
	}
	<-ctx.Done()
	return stop(context.Background())
}
