// Package ocr wraps the external OCR engine and selects the best transcript
// among the preprocessed image variants.
package ocr

import (
	"context"
	"image"
)

// Engine converts image pixels to text. Implementations are treated as a
// black box: a failed or empty recognition is reported via error or an empty
// string, never a partial result. Engines must be safe for concurrent use.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Config holds the settings for the tesseract-backed engine.
type Config struct {
	// Language is the tesseract language code; its data must be installed.
	Language string `mapstructure:"language" yaml:"language" json:"language"`
	// TessdataPrefix overrides the tessdata directory. Empty means the
	// system default; no install paths are hardcoded here.
	TessdataPrefix string `mapstructure:"tessdata_prefix" yaml:"tessdata_prefix" json:"tessdata_prefix"`
}

// DefaultConfig returns engine defaults for English statblocks.
func DefaultConfig() Config {
	return Config{Language: "eng"}
}
