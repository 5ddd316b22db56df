package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/richeditor/internal/config/loader"
)

// Config holds every editor setting.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Image   ImageConfig   `toml:"image"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig configures the editing engine.
type EditorConfig struct {
	// Placeholder is the hint shown in the first empty text block.
	Placeholder string `toml:"placeholder"`
	// AttachDelayMs is the delay before an inserted image is attached.
	AttachDelayMs int `toml:"attachDelayMs"`
}

// AttachDelay returns AttachDelayMs as a duration.
func (c EditorConfig) AttachDelay() time.Duration {
	return time.Duration(c.AttachDelayMs) * time.Millisecond
}

// ImageConfig configures image decoding.
type ImageConfig struct {
	// MaxWidth caps decoded image width. Zero means the viewport width.
	MaxWidth int `toml:"maxWidth"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Placeholder:   "input here",
			AttachDelayMs: 200,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	envPrefix string
	env       bool
}

// WithFS reads the configuration file from fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv skips the environment layer.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. A missing file is not an error; an empty path uses
// DefaultPath.
func Load(path string, opts ...Option) (Config, error) {
	o := options{fs: loader.DefaultFS(), envPrefix: loader.DefaultEnvPrefix, env: true}
	for _, opt := range opts {
		opt(&o)
	}
	if path == "" {
		path = DefaultPath()
	}

	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	file, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
	if err != nil {
		return Config{}, err
	}
	merged = loader.DeepMerge(merged, file)

	if o.env {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return Config{}, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Editor.AttachDelayMs < 0 {
		errs = append(errs, &ValidationError{Path: "editor.attachDelayMs", Message: "must not be negative", Value: c.Editor.AttachDelayMs})
	}
	if c.Image.MaxWidth < 0 {
		errs = append(errs, &ValidationError{Path: "image.maxWidth", Message: "must not be negative", Value: c.Image.MaxWidth})
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level})
	}
	return errors.Join(errs...)
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "richeditor", "config.toml")
	}
	return filepath.Join(".richeditor", "config.toml")
}

func toMap(c Config) (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding defaults: %w", err)
	}
	return m, nil
}

// fromMap decodes a merged settings tree into a Config.
func fromMap(m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("encoding settings: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding settings: %w: %w", ErrTypeMismatch, err)
	}
	return cfg, nil
}
