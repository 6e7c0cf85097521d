package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keyline/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "KEYLINE_"

// Limits enforced by Validate.
const (
	MinTabSize = 1
	MaxTabSize = 32
)

// LogLevels lists the accepted logging.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds every Keyline setting.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Scroll    ScrollConfig    `toml:"scroll"`
	Logging   LoggingConfig   `toml:"logging"`
	Script    ScriptConfig    `toml:"script"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// EditorConfig holds editing settings.
type EditorConfig struct {
	// TabSize is the number of spaces Tab inserts and indents by.
	TabSize int `toml:"tabSize"`
	// ReadOnly rejects every edit.
	ReadOnly bool `toml:"readOnly"`
}

// ScrollConfig holds mouse wheel settings.
type ScrollConfig struct {
	// XMultiplier scales horizontal wheel steps.
	XMultiplier int `toml:"xMultiplier"`
	// YMultiplier scales vertical wheel steps.
	YMultiplier int `toml:"yMultiplier"`
	InvertX     bool `toml:"invertX"`
	InvertY     bool `toml:"invertY"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of LogLevels.
	Level string `toml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file"`
}

// ScriptConfig holds Lua settings.
type ScriptConfig struct {
	// Init is a Lua file run at startup. Empty runs nothing.
	Init string `toml:"init"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// System uses the operating system clipboard when one is available.
	System bool `toml:"system"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor:    EditorConfig{TabSize: 4},
		Scroll:    ScrollConfig{XMultiplier: 4, YMultiplier: 1},
		Logging:   LoggingConfig{Level: "info"},
		Clipboard: ClipboardConfig{System: true},
	}
}

// Load builds a Config from the defaults, the file at path (skipped when
// path is empty or the file does not exist) and KEYLINE_ environment
// variables, then validates it.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is Load reading the config file through fsys.
func LoadWithFS(fsys loader.FileSystem, path string) (*Config, error) {
	var layers []map[string]any

	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		layers = append(layers, m)
	}

	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return nil, err
	}
	layers = append(layers, env)

	merged := make(map[string]any)
	for _, m := range layers {
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes m onto c. Keys absent from m keep their current values.
func (c *Config) apply(m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(pruneNil(m))
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return &ValidationError{Path: "config", Message: err.Error(), Value: string(data)}
	}
	return nil
}

// pruneNil drops keys with nil values, which YAML produces for empty
// entries and TOML cannot encode.
func pruneNil(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case nil:
		case map[string]any:
			out[k] = pruneNil(x)
		default:
			out[k] = v
		}
	}
	return out
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabSize < MinTabSize || c.Editor.TabSize > MaxTabSize {
		errs = append(errs, &ValidationError{
			Path:    "editor.tabSize",
			Message: fmt.Sprintf("must be between %d and %d", MinTabSize, MaxTabSize),
			Value:   c.Editor.TabSize,
		})
	}
	if c.Scroll.XMultiplier < 1 {
		errs = append(errs, &ValidationError{Path: "scroll.xMultiplier", Message: "must be at least 1", Value: c.Scroll.XMultiplier})
	}
	if c.Scroll.YMultiplier < 1 {
		errs = append(errs, &ValidationError{Path: "scroll.yMultiplier", Message: "must be at least 1", Value: c.Scroll.YMultiplier})
	}
	if !validLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be one of " + strings.Join(LogLevels, ", "),
			Value:   c.Logging.Level,
		})
	}

	return errors.Join(errs...)
}

func validLevel(level string) bool {
	for _, l := range LogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
