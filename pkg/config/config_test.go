package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Threshold != 0.3 {
		t.Errorf("Threshold = %v, want 0.3", cfg.Threshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML, FormatHTML, FormatPDF, FormatText} {
		cfg := Default()
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q: unexpected error %v", format, err)
		}
	}

	cfg := Default()
	cfg.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("format xml: err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.5} {
		cfg := Default()
		cfg.Threshold = threshold
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("threshold %v: err = %v, want ErrInvalidConfig", threshold, err)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), false); err != nil {
		t.Errorf("implicit missing file: err = %v, want nil", err)
	}
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Error("explicit missing file must error")
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complymap.yaml")
	body := "format: json\nthreshold: 0.5\nno_color: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path, true); err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Threshold != 0.5 {
		t.Errorf("Threshold = %v, want 0.5", cfg.Threshold)
	}
	if !cfg.NoColor {
		t.Error("NoColor not loaded")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("\tformat: json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path, true); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
