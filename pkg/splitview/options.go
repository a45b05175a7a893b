package splitview

import (
	"time"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/adapters/resize"
	"github.com/bft-labs/splitview/internal/app"
	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
	"github.com/bft-labs/splitview/pkg/log"
)

// Re-export types used in options so callers need only this package.
type (
	// Marker is the seam drawn at the boundary.
	Marker = domain.Marker

	// Color is a channel tuple.
	Color = domain.Color

	// Align selects how differently sized inputs are brought to one size.
	Align = app.Align

	// Kernel names a resize interpolation kernel.
	Kernel = resize.Kernel

	// Logger is the structured logging interface from pkg/log.
	Logger = log.Logger
)

// Alignment modes and kernels.
const (
	AlignCrop   = app.AlignCrop
	AlignResize = app.AlignResize

	KernelNearest    = resize.Nearest
	KernelBilinear   = resize.Bilinear
	KernelCatmullRom = resize.CatmullRom
)

// Option configures optional behavior of a Comparer.
type Option func(*options)

type options struct {
	logger      ports.Logger
	align       app.Align
	kernel      resize.Kernel
	marker      domain.Marker
	fraction    float64
	step        float64
	jpegQuality int
	debounce    time.Duration
}

func defaultOptions() options {
	return options{
		logger:      log.NewNoopLogger(),
		align:       app.AlignResize,
		kernel:      resize.Bilinear,
		marker:      domain.DefaultMarker(),
		fraction:    app.DefaultFraction,
		step:        app.DefaultStep,
		jpegQuality: imagefile.DefaultJPEGQuality,
		debounce:    100 * time.Millisecond,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAlign selects crop or resize alignment.
func WithAlign(a Align) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithKernel sets the kernel used by resize alignment.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithMarker sets the seam marker. A zero Width disables it.
func WithMarker(m Marker) Option {
	return func(o *options) {
		o.marker = m
	}
}

// WithFraction sets the starting boundary. Out of range values are clamped.
func WithFraction(f float64) Option {
	return func(o *options) {
		o.fraction = f
	}
}

// WithStep sets the increment used by Nudge.
func WithStep(s float64) Option {
	return func(o *options) {
		o.step = s
	}
}

// WithJPEGQuality sets the quality used when saving JPEG output.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = q
	}
}

// WithDebounce sets how long Watch waits after a file event before reloading.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
