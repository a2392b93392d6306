// Package config centralizes configuration for the statscribe application.
// Settings come from configuration files, environment variables, and
// command-line flags, in ascending priority.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/tomecraft/statscribe/internal/extract"
	"github.com/tomecraft/statscribe/internal/ocr"
	"github.com/tomecraft/statscribe/internal/preprocess"
	"github.com/tomecraft/statscribe/internal/server"
)

// Config represents the complete configuration for the statscribe application.
// It covers all commands (scan, pdf, serve).
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// OCR engine configuration
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr" json:"ocr"`

	// Image preprocessing configuration
	Preprocess PreprocessConfig `mapstructure:"preprocess" yaml:"preprocess" json:"preprocess"`

	// Extraction pipeline configuration
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract" json:"extract"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// OCRConfig contains tesseract engine settings.
type OCRConfig struct {
	Language       string `mapstructure:"language" yaml:"language" json:"language"`
	TessdataPrefix string `mapstructure:"tessdata_prefix" yaml:"tessdata_prefix" json:"tessdata_prefix"`
}

// PreprocessConfig contains image preprocessing settings.
type PreprocessConfig struct {
	MinDimension  int     `mapstructure:"min_dimension" yaml:"min_dimension" json:"min_dimension"`
	ContrastBoost float64 `mapstructure:"contrast_boost" yaml:"contrast_boost" json:"contrast_boost"`
	SharpenSigma  float64 `mapstructure:"sharpen_sigma" yaml:"sharpen_sigma" json:"sharpen_sigma"`
	BinaryCutoff  int     `mapstructure:"binary_cutoff" yaml:"binary_cutoff" json:"binary_cutoff"`
	EdgeCutoff    int     `mapstructure:"edge_cutoff" yaml:"edge_cutoff" json:"edge_cutoff"`
}

// ExtractConfig contains extraction pipeline settings.
type ExtractConfig struct {
	Workers       int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	MinTextLength int    `mapstructure:"min_text_length" yaml:"min_text_length" json:"min_text_length"`
	DebugDir      string `mapstructure:"debug_dir" yaml:"debug_dir" json:"debug_dir"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxUploadMB     int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	ppd := preprocess.DefaultConfig()
	ocrd := ocr.DefaultConfig()
	return Config{
		LogLevel: "info",
		Verbose:  false,
		OCR: OCRConfig{
			Language: ocrd.Language,
		},
		Preprocess: PreprocessConfig{
			MinDimension:  ppd.MinDimension,
			ContrastBoost: ppd.ContrastBoost,
			SharpenSigma:  ppd.SharpenSigma,
			BinaryCutoff:  int(ppd.BinaryCutoff),
			EdgeCutoff:    int(ppd.EdgeCutoff),
		},
		Extract: ExtractConfig{
			Workers:       runtime.NumCPU(),
			MinTextLength: 50,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxUploadMB:     50,
			TimeoutSec:      120,
			ShutdownTimeout: 10,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validFormats := []string{"text", "json", "yaml"}
	if c.Output.Format != "" && !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)", c.Output.Format, strings.Join(validFormats, ", "))
	}

	if c.OCR.Language == "" {
		return fmt.Errorf("ocr language must not be empty")
	}

	if c.Preprocess.MinDimension <= 0 {
		return fmt.Errorf("invalid preprocess min dimension: %d (must be positive)", c.Preprocess.MinDimension)
	}
	if err := validateCutoff(c.Preprocess.BinaryCutoff, "preprocess.binary_cutoff"); err != nil {
		return err
	}
	if err := validateCutoff(c.Preprocess.EdgeCutoff, "preprocess.edge_cutoff"); err != nil {
		return err
	}

	if c.Extract.Workers <= 0 {
		return fmt.Errorf("invalid extract workers: %d (must be positive)", c.Extract.Workers)
	}
	if c.Extract.MinTextLength < 0 {
		return fmt.Errorf("invalid extract min text length: %d (must not be negative)", c.Extract.MinTextLength)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max upload size: %d (must be positive)", c.Server.MaxUploadMB)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout: %d (must be positive)", c.Server.TimeoutSec)
	}

	return nil
}

// ToExtractConfig converts the application config into the extraction
// pipeline's own config type.
func (c *Config) ToExtractConfig() extract.Config {
	ppd := preprocess.DefaultConfig()
	pp := preprocess.Config{
		MinDimension:  c.Preprocess.MinDimension,
		ContrastBoost: c.Preprocess.ContrastBoost,
		SharpenSigma:  c.Preprocess.SharpenSigma,
		BinaryCutoff:  ppd.BinaryCutoff,
		EdgeCutoff:    ppd.EdgeCutoff,
		UnsharpRadius: ppd.UnsharpRadius,
		UnsharpAmount: ppd.UnsharpAmount,
	}
	if c.Preprocess.BinaryCutoff >= 0 && c.Preprocess.BinaryCutoff <= 255 {
		pp.BinaryCutoff = uint8(c.Preprocess.BinaryCutoff)
	}
	if c.Preprocess.EdgeCutoff >= 0 && c.Preprocess.EdgeCutoff <= 255 {
		pp.EdgeCutoff = uint8(c.Preprocess.EdgeCutoff)
	}

	return extract.Config{
		Preprocess: pp,
		OCR: ocr.Config{
			Language:       c.OCR.Language,
			TessdataPrefix: c.OCR.TessdataPrefix,
		},
		Workers:       c.Extract.Workers,
		MinTextLength: c.Extract.MinTextLength,
		DebugDir:      c.Extract.DebugDir,
	}
}

// ToServerConfig converts the application config into the server's own
// config type.
func (c *Config) ToServerConfig() server.Config {
	return server.Config{
		Host:          c.Server.Host,
		Port:          c.Server.Port,
		CORSOrigin:    c.Server.CORSOrigin,
		MaxUploadMB:   int64(c.Server.MaxUploadMB),
		TimeoutSec:    c.Server.TimeoutSec,
		ExtractConfig: c.ToExtractConfig(),
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func validateCutoff(value int, name string) error {
	if value < 0 || value > 255 {
		return fmt.Errorf("invalid %s: %d (must be between 0 and 255)", name, value)
	}
	return nil
}
