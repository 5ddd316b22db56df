package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/richeditor/internal/config/loader"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func (m memFS) Stat(string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("/missing.toml", WithFS(memFS{}), WithoutEnv())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Editor.AttachDelay() != 200*time.Millisecond {
		t.Errorf("AttachDelay = %v", cfg.Editor.AttachDelay())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	fsys := memFS{"/c.toml": `
[editor]
attachDelayMs = 5

[image]
maxWidth = 640

[logging]
level = "debug"
`}
	cfg, err := Load("/c.toml", WithFS(fsys), WithoutEnv())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Editor.AttachDelayMs = 5
	want.Image.MaxWidth = 640
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("RETEST_LOG_LEVEL", "warn")
	t.Setenv("RETEST_PLACEHOLDER", "type here")
	fsys := memFS{"/c.toml": "[logging]\nlevel = \"debug\"\n"}

	cfg, err := Load("/c.toml", WithFS(fsys), WithEnvPrefix("RETEST_"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "warn" || cfg.Editor.Placeholder != "type here" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvPlaceholderStaysText(t *testing.T) {
	tests := []string{"42", "yes", "off"}
	for _, val := range tests {
		t.Run(val, func(t *testing.T) {
			t.Setenv("RETEST_PLACEHOLDER", val)
			cfg, err := Load("/missing.toml", WithFS(memFS{}), WithEnvPrefix("RETEST_"))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Editor.Placeholder != val {
				t.Errorf("Placeholder = %q, want %q", cfg.Editor.Placeholder, val)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		check func(error) bool
	}{
		{"parse", "[editor\n", func(err error) bool {
			var perr *loader.ParseError
			return errors.As(err, &perr)
		}},
		{"negative delay", "[editor]\nattachDelayMs = -1\n", func(err error) bool {
			return errors.Is(err, ErrValidationFailed)
		}},
		{"bad level", "[logging]\nlevel = \"loud\"\n", func(err error) bool {
			var verr *ValidationError
			return errors.As(err, &verr) && verr.Path == "logging.level"
		}},
		{"wrong type", "[image]\nmaxWidth = \"wide\"\n", func(err error) bool {
			return errors.Is(err, ErrTypeMismatch)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("/c.toml", WithFS(memFS{"/c.toml": tt.file}), WithoutEnv())
			if err == nil || !tt.check(err) {
				t.Errorf("Load err = %v", err)
			}
		})
	}
}
