package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
// Pointer fields distinguish "unset" from a meaningful zero.
type FileConfig struct {
	Before      string   `toml:"before"`
	After       string   `toml:"after"`
	Output      string   `toml:"output"`
	OutputDir   string   `toml:"output_dir"`
	Format      string   `toml:"format"`
	Fraction    *float64 `toml:"fraction"`
	Step        float64  `toml:"step"`
	Align       string   `toml:"align"`
	Kernel      string   `toml:"kernel"`
	LineWidth   *int     `toml:"line_width"`
	LineColor   string   `toml:"line_color"`
	JPEGQuality int      `toml:"jpeg_quality"`
	Debounce    string   `toml:"debounce"`
	LogLevel    string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.splitview/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".splitview", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("before", fc.Before, &cfg.Before)
	s.setString("after", fc.After, &cfg.After)
	s.setString("out", fc.Output, &cfg.Output)
	s.setString("out-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("align", fc.Align, &cfg.Align)
	s.setString("kernel", fc.Kernel, &cfg.Kernel)
	s.setString("line-color", fc.LineColor, &cfg.LineColor)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setFloatPtr("fraction", fc.Fraction, &cfg.Fraction)
	s.setFloat("step", fc.Step, &cfg.Step)

	s.setIntPtr("line-width", fc.LineWidth, &cfg.LineWidth)
	s.setInt("jpeg-quality", fc.JPEGQuality, &cfg.JPEGQuality)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
