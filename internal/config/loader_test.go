package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// clearStatscribeEnvVars clears all STATSCRIBE_ environment variables so a
// developer's shell doesn't leak into test results.
func clearStatscribeEnvVars() {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) > 0 {
				_ = os.Unsetenv(parts[0])
			}
		}
	}
}

func freshLoader() *Loader {
	return &Loader{v: viper.New()}
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if loader.v == nil {
		t.Error("Loader viper instance is nil")
	}
}

func TestLoadWithNoConfigFile(t *testing.T) {
	clearStatscribeEnvVars()

	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	cfg, err := freshLoader().Load()
	if err != nil {
		t.Errorf("Load() unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should get default values
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("Expected default OCR language 'eng', got %s", cfg.OCR.Language)
	}
}

func TestLoadWithFile(t *testing.T) {
	clearStatscribeEnvVars()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "statscribe.yaml")

	yamlContent := `
log_level: debug
verbose: true
ocr:
  language: deu
preprocess:
  min_dimension: 1200
extract:
  workers: 2
server:
  port: 9090
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := freshLoader().LoadWithFile(configFile)
	if err != nil {
		t.Fatalf("LoadWithFile() unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %s", cfg.LogLevel)
	}
	if !cfg.Verbose {
		t.Error("Expected verbose true")
	}
	if cfg.OCR.Language != "deu" {
		t.Errorf("Expected OCR language 'deu', got %s", cfg.OCR.Language)
	}
	if cfg.Preprocess.MinDimension != 1200 {
		t.Errorf("Expected min dimension 1200, got %d", cfg.Preprocess.MinDimension)
	}
	if cfg.Extract.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", cfg.Extract.Workers)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}

	// Unspecified keys keep their defaults
	if cfg.Server.MaxUploadMB != 50 {
		t.Errorf("Expected default max upload 50, got %d", cfg.Server.MaxUploadMB)
	}
}

func TestLoadWithFileMissing(t *testing.T) {
	_, err := freshLoader().LoadWithFile("/nonexistent/statscribe.yaml")
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadWithFileInvalidValues(t *testing.T) {
	clearStatscribeEnvVars()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "statscribe.yaml")

	yamlContent := `
log_level: shouting
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := freshLoader().LoadWithFile(configFile)
	if err == nil {
		t.Error("Expected validation error for invalid log level")
	}
}

func TestGetConfigSearchPaths(t *testing.T) {
	paths := GetConfigSearchPaths()
	if len(paths) == 0 {
		t.Fatal("Expected at least one search path")
	}
	if paths[0] != "." {
		t.Errorf("Expected first search path to be '.', got %s", paths[0])
	}
}
