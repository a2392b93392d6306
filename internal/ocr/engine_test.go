package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "eng", cfg.Language)
	assert.Empty(t, cfg.TessdataPrefix)
}

func TestNewTesseractImplementsEngine(t *testing.T) {
	var _ Engine = NewTesseract(DefaultConfig())
}
