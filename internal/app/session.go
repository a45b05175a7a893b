package app

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
	"github.com/bft-labs/splitview/pkg/compositor"
	"github.com/bft-labs/splitview/pkg/log"
)

// Align selects how two differently sized inputs are brought to a common size.
type Align string

const (
	// AlignCrop keeps the top-left min(width) x min(height) region of both images.
	AlignCrop Align = "crop"
	// AlignResize scales both images to min(width) x min(height).
	AlignResize Align = "resize"
)

// ParseAlign validates an alignment mode name.
func ParseAlign(s string) (Align, error) {
	switch Align(s) {
	case AlignCrop, AlignResize:
		return Align(s), nil
	case "":
		return AlignResize, nil
	default:
		return "", fmt.Errorf("%w: unknown align mode %q (want crop or resize)", domain.ErrInvalidConfig, s)
	}
}

// Defaults for the boundary control.
const (
	DefaultFraction = 0.5
	DefaultStep     = 0.01
)

// SessionConfig configures a comparison Session.
type SessionConfig struct {
	Align    Align
	Marker   domain.Marker
	Fraction float64
	Step     float64
}

// DefaultSessionConfig returns resize alignment, the default marker and a
// boundary of 0.5 moving in 0.01 steps.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Align:    AlignResize,
		Marker:   domain.DefaultMarker(),
		Fraction: DefaultFraction,
		Step:     DefaultStep,
	}
}

// Session holds the host-side state of one comparison: the two aligned
// images and the current boundary. Every Render call invokes the compositor
// again with the current inputs; nothing rendered is cached.
type Session struct {
	mu sync.RWMutex

	cfg     SessionConfig
	resizer ports.Resizer
	encoder ports.ImageEncoder
	logger  ports.Logger

	before   domain.Grid
	after    domain.Grid
	loaded   bool
	fraction float64
}

// NewSession creates a session. resizer is only used with AlignResize and
// may be nil otherwise; a nil logger discards output.
func NewSession(cfg SessionConfig, resizer ports.Resizer, encoder ports.ImageEncoder, logger ports.Logger) *Session {
	if cfg.Step <= 0 || cfg.Step > 1 {
		cfg.Step = DefaultStep
	}
	if cfg.Align == "" {
		cfg.Align = AlignResize
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Session{
		cfg:      cfg,
		resizer:  resizer,
		encoder:  encoder,
		logger:   logger,
		fraction: compositor.ClampFraction(cfg.Fraction),
	}
}

// SetImages normalizes the channel layout of both images and aligns them
// to a common size. The caller's grids are not retained.
func (s *Session) SetImages(before, after domain.Grid) error {
	if before.Empty() || after.Empty() {
		return domain.ErrEmptyImage
	}
	before, after, err := domain.NormalizeChannels(before, after)
	if err != nil {
		return err
	}

	w, h := min(before.Width, after.Width), min(before.Height, after.Height)
	switch {
	case s.cfg.Align == AlignResize && s.resizer != nil:
		before = s.resizer.Resize(before, w, h)
		after = s.resizer.Resize(after, w, h)
	default:
		before = compositor.Crop(before, w, h)
		after = compositor.Crop(after, w, h)
	}

	s.mu.Lock()
	s.before, s.after, s.loaded = before, after, true
	s.mu.Unlock()

	s.logger.Info("images loaded",
		log.Size("size", w, h),
		log.Int("channels", before.Channels),
		log.String("align", string(s.cfg.Align)))
	return nil
}

// Loaded reports whether both images are set.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Images returns copies of the aligned before and after images.
func (s *Session) Images() (before, after domain.Grid, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.Grid{}, domain.Grid{}, false
	}
	return s.before.Clone(), s.after.Clone(), true
}

// Size returns the aligned image size, or 0x0 before images are loaded.
func (s *Session) Size() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.before.Width, s.before.Height
}

// Fraction returns the current boundary fraction.
func (s *Session) Fraction() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fraction
}

// Step returns the boundary step used by Nudge.
func (s *Session) Step() float64 {
	return s.cfg.Step
}

// SetFraction clamps f into [0, 1], stores it and returns the stored value.
func (s *Session) SetFraction(f float64) float64 {
	f = compositor.ClampFraction(f)
	s.mu.Lock()
	s.fraction = f
	s.mu.Unlock()
	return f
}

// Nudge moves the boundary by steps multiples of Step, snapping the result
// to the step grid, and returns the new fraction.
func (s *Session) Nudge(steps int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fraction + float64(steps)*s.cfg.Step
	f = math.Round(f/s.cfg.Step) * s.cfg.Step
	s.fraction = compositor.ClampFraction(f)
	return s.fraction
}

// Reset returns the boundary to the configured starting fraction.
func (s *Session) Reset() float64 {
	return s.SetFraction(s.cfg.Fraction)
}

// Render composites the current images at the current boundary.
func (s *Session) Render() (domain.Grid, error) {
	s.mu.RLock()
	before, after, loaded, f := s.before, s.after, s.loaded, s.fraction
	s.mu.RUnlock()

	if !loaded {
		return domain.Grid{}, domain.ErrNoImages
	}

	start := time.Now()
	out := compositor.CompositeWithMarker(before, after, f, s.cfg.Marker)
	s.logger.Debug("rendered comparison",
		log.Float64("fraction", f),
		log.Int("boundary_column", compositor.BoundaryColumn(out.Width, f)),
		log.Duration("took", time.Since(start)))
	return out, nil
}

// Percent formats the current boundary as a whole percentage, e.g. "50%".
func (s *Session) Percent() string {
	return FormatPercent(s.Fraction())
}

// Caption describes the current comparison.
func (s *Session) Caption() string {
	return fmt.Sprintf("Comparison (Boundary at %s)", s.Percent())
}

// FileName returns the download name for the current boundary, e.g.
// "comparison_50%.png".
func (s *Session) FileName(ext string) string {
	return fmt.Sprintf("comparison_%s%s", s.Percent(), ext)
}

// Export renders the comparison and writes it to w in the given format.
func (s *Session) Export(w io.Writer, format string) error {
	if s.encoder == nil {
		return fmt.Errorf("export: no encoder configured")
	}
	out, err := s.Render()
	if err != nil {
		return err
	}
	if err := s.encoder.Encode(w, out, format); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// FormatPercent renders f*100 with no decimals followed by "%".
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
}
