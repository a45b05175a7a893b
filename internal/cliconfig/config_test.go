package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/splitview/internal/app"
	"github.com/bft-labs/splitview/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Fraction != 0.5 {
		t.Errorf("Fraction = %v, want 0.5", cfg.Fraction)
	}
	if cfg.LineWidth != 3 {
		t.Errorf("LineWidth = %v, want 3", cfg.LineWidth)
	}
	if cfg.Format != "png" {
		t.Errorf("Format = %v, want png", cfg.Format)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", cfg.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErr    bool
		wantFormat string
		wantFrac   float64
	}{
		{
			name:       "defaults",
			mutate:     func(*Config) {},
			wantFormat: "png",
			wantFrac:   0.5,
		},
		{
			name:       "fraction above one is clamped",
			mutate:     func(c *Config) { c.Fraction = 1.7 },
			wantFormat: "png",
			wantFrac:   1,
		},
		{
			name:       "negative fraction is clamped",
			mutate:     func(c *Config) { c.Fraction = -0.2 },
			wantFormat: "png",
			wantFrac:   0,
		},
		{
			name:       "format derived from output path",
			mutate:     func(c *Config) { c.Output = "out/cmp.JPG" },
			wantFormat: "jpeg",
			wantFrac:   0.5,
		},
		{
			name:       "jpg alias",
			mutate:     func(c *Config) { c.Format = "jpg" },
			wantFormat: "jpeg",
			wantFrac:   0.5,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "gif" },
			wantErr: true,
		},
		{
			name:    "zero step",
			mutate:  func(c *Config) { c.Step = 0 },
			wantErr: true,
		},
		{
			name:    "bad align",
			mutate:  func(c *Config) { c.Align = "stretch" },
			wantErr: true,
		},
		{
			name:    "bad kernel",
			mutate:  func(c *Config) { c.Kernel = "lanczos" },
			wantErr: true,
		},
		{
			name:    "negative line width",
			mutate:  func(c *Config) { c.LineWidth = -1 },
			wantErr: true,
		},
		{
			name:    "bad line color",
			mutate:  func(c *Config) { c.LineColor = "white" },
			wantErr: true,
		},
		{
			name:    "jpeg quality out of range",
			mutate:  func(c *Config) { c.JPEGQuality = 101 },
			wantErr: true,
		},
		{
			name:    "zero debounce",
			mutate:  func(c *Config) { c.Debounce = 0 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", cfg.Format, tt.wantFormat)
			}
			if cfg.Fraction != tt.wantFrac {
				t.Errorf("Fraction = %v, want %v", cfg.Fraction, tt.wantFrac)
			}
		})
	}
}

func TestConfig_RequireInputs(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.RequireInputs(); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("RequireInputs() = %v, want ErrInvalidConfig", err)
	}
	cfg.Before = "a.png"
	if err := cfg.RequireInputs(); err == nil {
		t.Error("RequireInputs() with only before set should fail")
	}
	cfg.After = "b.png"
	if err := cfg.RequireInputs(); err != nil {
		t.Errorf("RequireInputs() unexpected error: %v", err)
	}
}

func TestConfig_SessionConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Align = "crop"
	cfg.LineWidth = 5
	cfg.LineColor = "#ff0000"
	cfg.Fraction = 0.25
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	sc := cfg.SessionConfig()
	if sc.Align != app.AlignCrop {
		t.Errorf("Align = %v, want crop", sc.Align)
	}
	if sc.Fraction != 0.25 {
		t.Errorf("Fraction = %v, want 0.25", sc.Fraction)
	}
	want := domain.Marker{Width: 5, Color: domain.Color{R: 255, A: 255}}
	if sc.Marker != want {
		t.Errorf("Marker = %+v, want %+v", sc.Marker, want)
	}
}
