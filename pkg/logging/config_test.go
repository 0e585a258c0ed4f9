package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/appkit/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"nonexistent file", "/nonexistent/logging.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path, "APPKITTEST")
			if err != nil {
				t.Fatalf("LoadConfig(%q) returned error: %v", tt.path, err)
			}

			if cfg.Level != "warn" {
				t.Errorf("default level = %q, want warn", cfg.Level)
			}
			if !cfg.Console.Enabled {
				t.Error("console should be enabled by default")
			}
			if cfg.Console.Color != "auto" {
				t.Errorf("default color = %q, want auto", cfg.Console.Color)
			}
			if !cfg.File.Enabled {
				t.Error("file logging should be enabled by default")
			}
			if cfg.File.Name != "" {
				t.Errorf("default file name = %q, want empty", cfg.File.Name)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yml")
	data := `
level: debug
console:
  enabled: true
  color: never
file:
  enabled: false
  name: other.log
levels:
  config: trace
  layout: error
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, "APPKITTEST")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Level)
	}
	if cfg.Console.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Console.Color)
	}
	if cfg.File.Enabled {
		t.Error("file logging should be disabled")
	}
	if cfg.File.Name != "other.log" {
		t.Errorf("file name = %q, want other.log", cfg.File.Name)
	}
	if cfg.Levels["config"] != "trace" || cfg.Levels["layout"] != "error" {
		t.Errorf("component levels = %v, want config:trace layout:error", cfg.Levels)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yml")
	if err := os.WriteFile(path, []byte("level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("APPKITTEST_LOG_LEVEL", "trace")
	t.Setenv("APPKITTEST_LOG_FILE_ENABLED", "false")

	cfg, err := LoadConfig(path, "APPKITTEST")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Level != "trace" {
		t.Errorf("env override should win, level = %q, want trace", cfg.Level)
	}
	if cfg.File.Enabled {
		t.Error("env override should disable file logging")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yml")
	if err := os.WriteFile(path, []byte("level: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path, "APPKITTEST")
	if err == nil {
		t.Fatal("LoadConfig should fail on malformed yaml")
	}
	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Errorf("error code = %v, want %v", errors.GetErrorCode(err), errors.ErrConfigParse)
	}
}

func TestComponentLevels(t *testing.T) {
	setComponentLevels(map[string]string{
		"noisy":   "error",
		"garbled": "not-a-level",
	})
	defer setComponentLevels(nil)

	if lvl, ok := componentLevel("noisy"); !ok || lvl != zerolog.ErrorLevel {
		t.Errorf("componentLevel(noisy) = %v, %v; want ErrorLevel, true", lvl, ok)
	}
	if _, ok := componentLevel("garbled"); ok {
		t.Error("invalid levels should be skipped")
	}
	if _, ok := componentLevel("unknown"); ok {
		t.Error("unknown components should have no override")
	}
}
