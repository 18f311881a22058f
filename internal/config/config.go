// Package config loads the diagnostic sink's threshold configuration from
// YAML, the one ambient surface a driver is expected to own and pass in
// (internal/diagnostics itself stays free of file I/O).
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aize-lang/aizec/internal/diagnostics"
)

// ThresholdConfig is the YAML-unmarshalable mirror of diagnostics.Thresholds.
// Level names are case-insensitive: note, message, warning, error, fatal,
// plus the all/never sentinels.
type ThresholdConfig struct {
	ThrowAt          LevelName `yaml:"throw_ge"`
	ImmediateFlushAt LevelName `yaml:"immediate_flush_ge"`
	FailAt           LevelName `yaml:"fail_ge"`
}

// LevelName is a diagnostics.Level that knows how to read itself from YAML
// text instead of the bare integer diagnostics.Level marshals as.
type LevelName diagnostics.Level

var levelNames = map[string]diagnostics.Level{
	"all":     diagnostics.LevelAll,
	"note":    diagnostics.LevelNote,
	"message": diagnostics.LevelMessage,
	"warning": diagnostics.LevelWarning,
	"error":   diagnostics.LevelError,
	"fatal":   diagnostics.LevelFatal,
	"never":   diagnostics.LevelNever,
}

func (l *LevelName) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("config: level must be a string: %w", err)
	}
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return fmt.Errorf("config: unknown level %q", text)
	}
	*l = LevelName(level)
	return nil
}

func (l LevelName) MarshalYAML() (any, error) {
	return strings.ToLower(diagnostics.Level(l).String()), nil
}

// Default mirrors diagnostics.DefaultThresholds: throw=never,
// immediate-flush=fatal, fail=error.
func Default() ThresholdConfig {
	d := diagnostics.DefaultThresholds()
	return ThresholdConfig{
		ThrowAt:          LevelName(d.ThrowAt),
		ImmediateFlushAt: LevelName(d.ImmediateFlushAt),
		FailAt:           LevelName(d.FailAt),
	}
}

// Thresholds converts to the plain value internal/diagnostics.NewSink wants.
func (c ThresholdConfig) Thresholds() diagnostics.Thresholds {
	return diagnostics.Thresholds{
		ThrowAt:          diagnostics.Level(c.ThrowAt),
		ImmediateFlushAt: diagnostics.Level(c.ImmediateFlushAt),
		FailAt:           diagnostics.Level(c.FailAt),
	}
}

// Load reads and parses a threshold config file, falling back to Default
// for any level left unset (the zero LevelName is LevelAll, which would
// otherwise mean "throw on every note" — not a value anyone would choose on
// purpose).
func Load(path string) (ThresholdConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ThresholdConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses threshold config content from bytes, applying Default for
// any field the YAML document omits entirely.
func Parse(data []byte) (ThresholdConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ThresholdConfig{}, fmt.Errorf("config: parsing: %w", err)
	}
	return cfg, nil
}
