package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxSheetRows != 500 {
		t.Errorf("Expected MaxSheetRows to be 500, got %d", cfg.MaxSheetRows)
	}
	if cfg.DefaultSlideTitle != "Presentation" {
		t.Errorf("Expected DefaultSlideTitle to be Presentation, got %q", cfg.DefaultSlideTitle)
	}
	if cfg.FallbackSheetName != "Sheet1" {
		t.Errorf("Expected FallbackSheetName to be Sheet1, got %q", cfg.FallbackSheetName)
	}
	if cfg.CompressionLevel != flate.DefaultCompression {
		t.Errorf("Expected default compression, got %d", cfg.CompressionLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid config", func(*Config) {}, false},
		{"zero row cap", func(c *Config) { c.MaxSheetRows = 0 }, true},
		{"negative row cap", func(c *Config) { c.MaxSheetRows = -5 }, true},
		{"empty slide title", func(c *Config) { c.DefaultSlideTitle = "" }, true},
		{"empty fallback sheet", func(c *Config) { c.FallbackSheetName = "" }, true},
		{"best compression", func(c *Config) { c.CompressionLevel = flate.BestCompression }, false},
		{"huffman only", func(c *Config) { c.CompressionLevel = flate.HuffmanOnly }, false},
		{"compression too high", func(c *Config) { c.CompressionLevel = 10 }, true},
		{"compression too low", func(c *Config) { c.CompressionLevel = -3 }, true},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, false},
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"empty view style", func(c *Config) { c.ViewStyle = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty for defaults", cfg.Source)
	}
	if cfg.MaxSheetRows != 500 {
		t.Errorf("MaxSheetRows = %d, want default", cfg.MaxSheetRows)
	}
}

func TestLoadFile_PartialOverrides(t *testing.T) {
	path := writeConfig(t, "max_sheet_rows: 20\nlog_level: debug\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.MaxSheetRows != 20 {
		t.Errorf("MaxSheetRows = %d, want 20", cfg.MaxSheetRows)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DefaultSlideTitle != "Presentation" {
		t.Errorf("unset key lost its default: %q", cfg.DefaultSlideTitle)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"malformed yaml", "max_sheet_rows: [1, 2\n", "failed to parse config"},
		{"wrong type", "max_sheet_rows: lots\n", "failed to parse config"},
		{"invalid value", "compression_level: 42\n", "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_UsesConfigPath(t *testing.T) {
	path := writeConfig(t, "default_slide_title: Deck\n")

	orig := ConfigPath
	ConfigPath = func() string { return path }
	defer func() { ConfigPath = orig }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultSlideTitle != "Deck" {
		t.Errorf("DefaultSlideTitle = %q, want Deck", cfg.DefaultSlideTitle)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "officemd", "config.yaml")

	cfg := DefaultConfig()
	cfg.MaxSheetRows = 42
	cfg.ViewStyle = "dark"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.MaxSheetRows != 42 || loaded.ViewStyle != "dark" {
		t.Errorf("loaded config = %+v", loaded)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if strings.Contains(string(data), "source") {
		t.Errorf("Source should not be persisted:\n%s", data)
	}
}
