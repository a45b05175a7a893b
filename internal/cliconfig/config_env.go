package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SPLITVIEW_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("before", os.Getenv("SPLITVIEW_BEFORE"), &cfg.Before)
	s.setString("after", os.Getenv("SPLITVIEW_AFTER"), &cfg.After)
	s.setString("out", os.Getenv("SPLITVIEW_OUTPUT"), &cfg.Output)
	s.setString("out-dir", os.Getenv("SPLITVIEW_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("format", os.Getenv("SPLITVIEW_FORMAT"), &cfg.Format)
	s.setString("align", os.Getenv("SPLITVIEW_ALIGN"), &cfg.Align)
	s.setString("kernel", os.Getenv("SPLITVIEW_KERNEL"), &cfg.Kernel)
	s.setString("line-color", os.Getenv("SPLITVIEW_LINE_COLOR"), &cfg.LineColor)
	s.setString("log-level", os.Getenv("SPLITVIEW_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("SPLITVIEW_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	if err := s.setFloatFromString("fraction", os.Getenv("SPLITVIEW_FRACTION"), &cfg.Fraction, true); err != nil {
		return err
	}
	if err := s.setFloatFromString("step", os.Getenv("SPLITVIEW_STEP"), &cfg.Step, false); err != nil {
		return err
	}

	if err := s.setIntFromString("line-width", os.Getenv("SPLITVIEW_LINE_WIDTH"), &cfg.LineWidth, true); err != nil {
		return err
	}
	if err := s.setIntFromString("jpeg-quality", os.Getenv("SPLITVIEW_JPEG_QUALITY"), &cfg.JPEGQuality, false); err != nil {
		return err
	}

	return nil
}
