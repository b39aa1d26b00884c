package sessionconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "noise_floor: 30\npsk_probe_trim: 200\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NoiseFloor != 30 {
		t.Fatalf("expected noise_floor=30, got %d", cfg.NoiseFloor)
	}
	if cfg.PSKProbeTrim != 200 {
		t.Fatalf("expected psk_probe_trim=200, got %d", cfg.PSKProbeTrim)
	}
	if cfg.DefaultMaxErr != Default().DefaultMaxErr {
		t.Fatalf("expected unspecified field to retain default")
	}
}

func TestValidateRejectsOutOfRangeVerbosity(t *testing.T) {
	cfg := Default()
	cfg.DebugVerbosity = 5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for out-of-range verbosity")
	}
}
