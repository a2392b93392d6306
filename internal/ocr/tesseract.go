package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the production Engine backed by the tesseract library via
// gosseract. Each Recognize call uses its own client, so the engine is safe
// to invoke concurrently across image variants.
type Tesseract struct {
	cfg Config
}

// NewTesseract creates a tesseract engine with the given configuration.
func NewTesseract(cfg Config) *Tesseract {
	if cfg.Language == "" {
		cfg.Language = DefaultConfig().Language
	}
	return &Tesseract{cfg: cfg}
}

// Recognize runs a single OCR pass over the image. The page segmentation
// mode is fixed to single-block, which matches the tabular statblock layout
// better than tesseract's automatic segmentation.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image for ocr: %w", err)
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(t.cfg.Language); err != nil {
		return "", fmt.Errorf("set ocr language %q: %w", t.cfg.Language, err)
	}
	if t.cfg.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.cfg.TessdataPrefix); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		return "", fmt.Errorf("set tesseract variable: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
