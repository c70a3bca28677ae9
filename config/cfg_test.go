package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"panelgen/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Engine.Theme != "basic" {
		t.Errorf("Theme = %q, want basic", cfg.Engine.Theme)
	}
	if cfg.Engine.Text.Delimiter != "^" {
		t.Errorf("Delimiter = %q, want ^", cfg.Engine.Text.Delimiter)
	}
	if cfg.Engine.Compression != common.CompressionDefault {
		t.Errorf("Compression = %v, want default", cfg.Engine.Compression)
	}
	if got := cfg.Engine.Fallbacks["heroes/"]; got != "heroes/unknown" {
		t.Errorf("heroes fallback = %q", got)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
engine:
  resource_root: "/srv/panel-resources"
  output_root: "/srv/out/"
  theme: alt
  png_compression: best
  workers: 3
  text:
    highlight_delimiter: "*"
    min_size: 20
    size_step: 4
    line_spacing: 6
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Engine.Theme != "alt" {
		t.Errorf("Theme = %q, want alt", cfg.Engine.Theme)
	}
	if cfg.Engine.OutputRoot != "/srv/out" {
		t.Errorf("OutputRoot = %q, want cleaned path", cfg.Engine.OutputRoot)
	}
	if cfg.Engine.Compression != common.CompressionBest {
		t.Errorf("Compression = %v, want best", cfg.Engine.Compression)
	}
	if cfg.Engine.Text.Step != 4 || cfg.Engine.Text.MinSize != 20 {
		t.Errorf("Text = %+v", cfg.Engine.Text)
	}
	// untouched values come from defaults
	if cfg.Engine.Fonts.Regular != "fonts/regular.ttf" {
		t.Errorf("Fonts.Regular = %q", cfg.Engine.Fonts.Regular)
	}
	if cfg.Engine.WorkerCount(16) != 3 {
		t.Errorf("WorkerCount() = %d, want 3", cfg.Engine.WorkerCount(16))
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	path := writeConfig(t, `version: 1
engine:
  resurce_root: typo
`)
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Fatal("Expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "resurce_root") {
		t.Errorf("error should mention unknown field, got %v", err)
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad version", "version: 2\n"},
		{"long delimiter", "version: 1\nengine:\n  text:\n    highlight_delimiter: \"^^\"\n"},
		{"tiny min size", "version: 1\nengine:\n  text:\n    min_size: 2\n"},
		{"bad compression", "version: 1\nengine:\n  png_compression: ultra\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 3\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected error")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected validator.ValidationErrors, got %T", err)
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "resource_root") {
		t.Error("default configuration should contain resource_root")
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(out), "png_compression: default") {
		t.Errorf("dump should marshal enums as text:\n%s", out)
	}
}

func TestWorkerCount(t *testing.T) {
	conf := EngineConfig{}
	if got := conf.WorkerCount(8); got != 8 {
		t.Errorf("WorkerCount(8) = %d", got)
	}
	if got := conf.WorkerCount(0); got != 1 {
		t.Errorf("WorkerCount(0) = %d", got)
	}
}
