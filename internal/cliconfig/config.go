package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/adapters/resize"
	"github.com/bft-labs/splitview/internal/app"
	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/pkg/compositor"
)

// Config holds CLI configuration for splitview.
type Config struct {
	Before string
	After  string

	// Output is an explicit output file. When empty the file is written to
	// OutputDir under a name derived from the boundary, e.g. comparison_50%.png.
	Output    string
	OutputDir string
	Format    string

	Fraction float64
	Step     float64
	Align    string
	Kernel   string

	LineWidth   int
	LineColor   string
	JPEGQuality int

	Debounce time.Duration
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputDir:   ".",
		Format:      imagefile.FormatPNG,
		Fraction:    app.DefaultFraction,
		Step:        app.DefaultStep,
		Align:       string(app.AlignResize),
		Kernel:      string(resize.Bilinear),
		LineWidth:   3,
		LineColor:   "#ffffff",
		JPEGQuality: imagefile.DefaultJPEGQuality,
		Debounce:    100 * time.Millisecond,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// The boundary fraction is clamped rather than rejected.
func (c *Config) Validate() error {
	c.Fraction = compositor.ClampFraction(c.Fraction)

	if c.Step <= 0 || c.Step > 1 {
		return invalid("step must be in (0, 1], got %v", c.Step)
	}
	if _, err := app.ParseAlign(c.Align); err != nil {
		return err
	}
	if _, err := resize.ParseKernel(c.Kernel); err != nil {
		return invalid("%v", err)
	}
	if c.LineWidth < 0 {
		return invalid("line-width must be non-negative, got %d", c.LineWidth)
	}
	if _, err := domain.ParseHexColor(c.LineColor); err != nil {
		return invalid("line-color: %v", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return invalid("jpeg-quality must be in [1, 100], got %d", c.JPEGQuality)
	}
	if c.Debounce <= 0 {
		return invalid("debounce must be positive")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return invalid("log-level: %v", err)
	}

	if c.Output != "" {
		c.Format = imagefile.FormatFromPath(c.Output)
	}
	switch strings.ToLower(c.Format) {
	case "", "png":
		c.Format = imagefile.FormatPNG
	case "jpg", "jpeg":
		c.Format = imagefile.FormatJPEG
	default:
		return invalid("format must be png or jpeg, got %q", c.Format)
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// RequireInputs checks that both input paths are set.
func (c *Config) RequireInputs() error {
	if c.Before == "" {
		return invalid("before image is required")
	}
	if c.After == "" {
		return invalid("after image is required")
	}
	return nil
}

// Marker returns the boundary marker described by LineWidth and LineColor.
// Call after Validate.
func (c Config) Marker() domain.Marker {
	col, err := domain.ParseHexColor(c.LineColor)
	if err != nil {
		col = domain.White
	}
	return domain.Marker{Width: max(c.LineWidth, 0), Color: col}
}

// SessionConfig converts the CLI configuration for app.NewSession.
func (c Config) SessionConfig() app.SessionConfig {
	align, err := app.ParseAlign(c.Align)
	if err != nil {
		align = app.AlignResize
	}
	return app.SessionConfig{
		Align:    align,
		Marker:   c.Marker(),
		Fraction: c.Fraction,
		Step:     c.Step,
	}
}

// ResizeKernel returns the configured kernel, defaulting to bilinear.
func (c Config) ResizeKernel() resize.Kernel {
	k, err := resize.ParseKernel(c.Kernel)
	if err != nil {
		return resize.Bilinear
	}
	return k
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int from a pointer if not nil and flag not changed.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloatPtr sets a float64 from a pointer if not nil and flag not changed.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Non-positive values are skipped unless keepAll is set, in which case
// range checks are left to Validate.
func (s *configSetter) setIntFromString(flag, value string, dst *int, keepAll bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 && !keepAll {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Non-positive values are skipped unless keepAll is set.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64, keepAll bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 && !keepAll {
		return nil
	}
	*dst = f
	return nil
}
