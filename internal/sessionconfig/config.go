// Package sessionconfig loads the YAML-tunable defaults for a
// session: the noise-floor threshold, the PSK probe left-trim
// constant, default decode budgets, and the default debug verbosity.
// Grounded on the teacher's nested yaml-tagged Config struct
// (config.go) and validated the way its DecoderConfig.Validate does.
package sessionconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level session configuration document.
type Config struct {
	NoiseFloor      int `yaml:"noise_floor"`
	PSKProbeTrim    int `yaml:"psk_probe_trim"`
	DefaultMaxErr   int `yaml:"default_max_err"`
	DefaultMaxLen   int `yaml:"default_max_len"`
	DebugVerbosity  int `yaml:"debug_verbosity"`
	SampleCapacity  int `yaml:"sample_capacity"`
	DemodCapacity   int `yaml:"demod_capacity"`
	MetricsAddr     string `yaml:"metrics_addr"`
}

// Default returns the built-in configuration used when no file is
// supplied, matching the constants named directly in the external
// interface and design notes sections.
func Default() Config {
	return Config{
		NoiseFloor:     20,
		PSKProbeTrim:   160,
		DefaultMaxErr:  100,
		DefaultMaxLen:  0,
		DebugVerbosity: 0,
		SampleCapacity: 40000,
		DemodCapacity:  1024,
	}
}

// Load reads a YAML config file and overlays it onto Default(),
// leaving any zero-valued field at its default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var overlay Config
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg = mergeNonZero(cfg, overlay)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeNonZero(base, overlay Config) Config {
	if overlay.NoiseFloor != 0 {
		base.NoiseFloor = overlay.NoiseFloor
	}
	if overlay.PSKProbeTrim != 0 {
		base.PSKProbeTrim = overlay.PSKProbeTrim
	}
	if overlay.DefaultMaxErr != 0 {
		base.DefaultMaxErr = overlay.DefaultMaxErr
	}
	if overlay.DefaultMaxLen != 0 {
		base.DefaultMaxLen = overlay.DefaultMaxLen
	}
	if overlay.DebugVerbosity != 0 {
		base.DebugVerbosity = overlay.DebugVerbosity
	}
	if overlay.SampleCapacity != 0 {
		base.SampleCapacity = overlay.SampleCapacity
	}
	if overlay.DemodCapacity != 0 {
		base.DemodCapacity = overlay.DemodCapacity
	}
	if overlay.MetricsAddr != "" {
		base.MetricsAddr = overlay.MetricsAddr
	}
	return base
}

// Validate rejects configurations that would break an invariant named
// elsewhere in the core: verbosity outside [0,2], a negative noise
// floor or PSK trim, and non-positive buffer capacities.
func (c Config) Validate() error {
	if c.DebugVerbosity < 0 || c.DebugVerbosity > 2 {
		return fmt.Errorf("debug_verbosity must be in [0,2], got %d", c.DebugVerbosity)
	}
	if c.NoiseFloor < 0 {
		return fmt.Errorf("noise_floor must be >= 0, got %d", c.NoiseFloor)
	}
	if c.PSKProbeTrim < 0 {
		return fmt.Errorf("psk_probe_trim must be >= 0, got %d", c.PSKProbeTrim)
	}
	if c.SampleCapacity <= 0 {
		return fmt.Errorf("sample_capacity must be > 0, got %d", c.SampleCapacity)
	}
	if c.DemodCapacity <= 0 {
		return fmt.Errorf("demod_capacity must be > 0, got %d", c.DemodCapacity)
	}
	return nil
}
