package config

import (
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("Expected default OCR language 'eng', got %s", cfg.OCR.Language)
	}
	if cfg.Preprocess.MinDimension != 800 {
		t.Errorf("Expected default min dimension 800, got %d", cfg.Preprocess.MinDimension)
	}
	if cfg.Extract.Workers != runtime.NumCPU() {
		t.Errorf("Expected default workers %d, got %d", runtime.NumCPU(), cfg.Extract.Workers)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad output format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
		{name: "yaml output format", mutate: func(c *Config) { c.Output.Format = "yaml" }},
		{name: "empty ocr language", mutate: func(c *Config) { c.OCR.Language = "" }, wantErr: true},
		{name: "zero min dimension", mutate: func(c *Config) { c.Preprocess.MinDimension = 0 }, wantErr: true},
		{name: "binary cutoff too high", mutate: func(c *Config) { c.Preprocess.BinaryCutoff = 300 }, wantErr: true},
		{name: "negative edge cutoff", mutate: func(c *Config) { c.Preprocess.EdgeCutoff = -1 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Extract.Workers = 0 }, wantErr: true},
		{name: "negative min text length", mutate: func(c *Config) { c.Extract.MinTextLength = -1 }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "zero upload size", mutate: func(c *Config) { c.Server.MaxUploadMB = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.TimeoutSec = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestToExtractConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OCR.Language = "deu"
	cfg.OCR.TessdataPrefix = "/opt/tessdata"
	cfg.Preprocess.BinaryCutoff = 170
	cfg.Extract.Workers = 3
	cfg.Extract.DebugDir = "/tmp/debug"

	ec := cfg.ToExtractConfig()

	if ec.OCR.Language != "deu" {
		t.Errorf("Expected language 'deu', got %s", ec.OCR.Language)
	}
	if ec.OCR.TessdataPrefix != "/opt/tessdata" {
		t.Errorf("Expected tessdata prefix '/opt/tessdata', got %s", ec.OCR.TessdataPrefix)
	}
	if ec.Preprocess.BinaryCutoff != 170 {
		t.Errorf("Expected binary cutoff 170, got %d", ec.Preprocess.BinaryCutoff)
	}
	if ec.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", ec.Workers)
	}
	if ec.DebugDir != "/tmp/debug" {
		t.Errorf("Expected debug dir '/tmp/debug', got %s", ec.DebugDir)
	}
}

func TestToServerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.MaxUploadMB = 25

	sc := cfg.ToServerConfig()

	if sc.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got %s", sc.Host)
	}
	if sc.MaxUploadMB != 25 {
		t.Errorf("Expected max upload 25, got %d", sc.MaxUploadMB)
	}
	if sc.ExtractConfig.OCR.Language != cfg.OCR.Language {
		t.Errorf("Expected extract config to carry OCR language %s", cfg.OCR.Language)
	}
}
