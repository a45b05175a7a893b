package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	zero := 0.0
	noLine := 0

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Before:      "/cfg/before.png",
				After:       "/cfg/after.png",
				OutputDir:   "/cfg/out",
				Format:      "jpeg",
				Fraction:    &zero,
				Step:        0.1,
				Align:       "crop",
				Kernel:      "catmullrom",
				LineWidth:   &noLine,
				LineColor:   "#00ff00",
				JPEGQuality: 80,
				Debounce:    "1s",
				LogLevel:    "warn",
			},
			changed: map[string]bool{},
			initial: Config{Fraction: 0.5, LineWidth: 3},
			expected: Config{
				Before:      "/cfg/before.png",
				After:       "/cfg/after.png",
				OutputDir:   "/cfg/out",
				Format:      "jpeg",
				Fraction:    0,
				Step:        0.1,
				Align:       "crop",
				Kernel:      "catmullrom",
				LineWidth:   0,
				LineColor:   "#00ff00",
				JPEGQuality: 80,
				Debounce:    time.Second,
				LogLevel:    "warn",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Before: "/cfg/before.png",
				After:  "/cfg/after.png",
			},
			changed: map[string]bool{"before": true},
			initial: Config{Before: "/flag/before.png"},
			expected: Config{
				Before: "/flag/before.png", // unchanged because flag was set
				After:  "/cfg/after.png",
			},
		},
		{
			name:       "unset pointers keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{Fraction: 0.5, LineWidth: 3},
			expected:   Config{Fraction: 0.5, LineWidth: 3},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Debounce: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`before = "a.png"`,
		`after = "b.png"`,
		`fraction = 0.0`,
		`line_width = 5`,
		`line_color = "#ff00ff"`,
		`debounce = "200ms"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if fc.Before != "a.png" || fc.After != "b.png" {
		t.Errorf("inputs = %q, %q", fc.Before, fc.After)
	}
	if fc.Fraction == nil || *fc.Fraction != 0 {
		t.Errorf("Fraction = %v, want pointer to 0", fc.Fraction)
	}
	if fc.LineWidth == nil || *fc.LineWidth != 5 {
		t.Errorf("LineWidth = %v, want pointer to 5", fc.LineWidth)
	}
	if fc.Debounce != "200ms" {
		t.Errorf("Debounce = %q, want 200ms", fc.Debounce)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() on missing file should fail")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("fraction = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() on malformed TOML should fail")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.toml")
	if FileExists(path) {
		t.Error("FileExists() true before creation")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() false after creation")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory")
	}
	if filepath.Base(p) != "config.toml" || filepath.Base(filepath.Dir(p)) != ".splitview" {
		t.Errorf("DefaultConfigPath() = %v", p)
	}
}
