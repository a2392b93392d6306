// Package extract wires the statblock pipeline together: preprocess the
// uploaded image into variants, OCR each variant, select the best transcript,
// and turn it into a structured monster record. Each call is a pure function
// of one image payload; no state is shared across extractions.
package extract

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/tomecraft/statscribe/internal/ocr"
	"github.com/tomecraft/statscribe/internal/preprocess"
	"github.com/tomecraft/statscribe/internal/statblock"
)

// Config holds configuration for the extraction pipeline and its components.
type Config struct {
	Preprocess preprocess.Config
	OCR        ocr.Config

	// Workers bounds concurrent OCR invocations across variants.
	Workers int

	// MinTextLength is the transcript length below which the result is
	// considered suspicious and the debug artifact is written.
	MinTextLength int

	// DebugDir, when set, receives a copy of the edge-threshold variant
	// whenever the selected text is suspiciously short. Advisory only.
	DebugDir string
}

// DefaultConfig returns a default extraction config with component defaults.
func DefaultConfig() Config {
	return Config{
		Preprocess:    preprocess.DefaultConfig(),
		OCR:           ocr.DefaultConfig(),
		Workers:       runtime.NumCPU(),
		MinTextLength: 50,
	}
}

// Builder constructs an Extractor with fluent configuration.
type Builder struct {
	cfg    Config
	engine ocr.Engine
}

// NewBuilder creates a new extractor builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithConfig replaces the whole configuration at once. Zero-valued fields
// keep their defaults.
func (b *Builder) WithConfig(cfg Config) *Builder {
	def := DefaultConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = def.MinTextLength
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = def.OCR.Language
	}
	if cfg.Preprocess == (preprocess.Config{}) {
		cfg.Preprocess = def.Preprocess
	}
	b.cfg = cfg
	return b
}

// WithEngine injects an OCR engine, replacing the default tesseract one.
func (b *Builder) WithEngine(e ocr.Engine) *Builder {
	if e != nil {
		b.engine = e
	}
	return b
}

// WithLanguage sets the OCR language code.
func (b *Builder) WithLanguage(lang string) *Builder {
	if lang != "" {
		b.cfg.OCR.Language = lang
	}
	return b
}

// WithTessdataPrefix overrides the tesseract data directory.
func (b *Builder) WithTessdataPrefix(dir string) *Builder {
	if dir != "" {
		b.cfg.OCR.TessdataPrefix = dir
	}
	return b
}

// WithWorkers bounds concurrent OCR invocations (if >0).
func (b *Builder) WithWorkers(n int) *Builder {
	if n > 0 {
		b.cfg.Workers = n
	}
	return b
}

// WithDebugDir enables the short-transcript debug artifact in dir.
func (b *Builder) WithDebugDir(dir string) *Builder {
	if dir != "" {
		b.cfg.DebugDir = dir
	}
	return b
}

// WithMinTextLength sets the suspicious-transcript threshold.
func (b *Builder) WithMinTextLength(n int) *Builder {
	if n >= 0 {
		b.cfg.MinTextLength = n
	}
	return b
}

// WithPreprocess replaces the preprocessing configuration.
func (b *Builder) WithPreprocess(cfg preprocess.Config) *Builder {
	b.cfg.Preprocess = cfg
	return b
}

// Config returns a copy of the current config.
func (b *Builder) Config() Config { return b.cfg }

// Build initializes the extractor, wiring the tesseract engine unless one
// was injected.
func (b *Builder) Build() (*Extractor, error) {
	if b.cfg.Workers <= 0 {
		return nil, fmt.Errorf("invalid worker count: %d", b.cfg.Workers)
	}
	engine := b.engine
	if engine == nil {
		engine = ocr.NewTesseract(b.cfg.OCR)
	}
	return &Extractor{cfg: b.cfg, engine: engine}, nil
}

// Extractor runs the statblock extraction pipeline.
type Extractor struct {
	cfg    Config
	engine ocr.Engine
}

// Result is the outcome of one extraction: the assembled record, the raw
// transcript it was parsed from (useful for caller-side diagnostics), the
// preprocessing strategy that produced it, and the completeness flag.
// Complete=false is advisory; the partial record remains usable.
type Result struct {
	Record   statblock.Record `json:"record"`
	RawText  string           `json:"raw_text"`
	Strategy string           `json:"strategy"`
	Complete bool             `json:"complete"`
}

// Extract runs the full pipeline over raw image bytes. Decode failures and
// total OCR failure surface as ErrImageDecode and ErrNoText respectively;
// everything else yields a record, however partial.
func (e *Extractor) Extract(ctx context.Context, data []byte) (*Result, error) {
	variants, err := preprocess.Variants(data, e.cfg.Preprocess)
	if err != nil {
		return nil, fmt.Errorf("preprocess image: %w", err)
	}

	cand, err := ocr.SelectBest(ctx, e.engine, variants, e.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("select transcript: %w", err)
	}

	if len(cand.Text) < e.cfg.MinTextLength {
		e.saveDebugArtifact(variants)
	}

	return e.ExtractText(cand.Text, cand.Strategy), nil
}

// ExtractImage runs the pipeline over an already decoded image, skipping the
// byte-level decode. Used by the PDF ingress path, where pdfcpu hands back
// decoded page images.
func (e *Extractor) ExtractImage(ctx context.Context, img image.Image) (*Result, error) {
	variants := preprocess.VariantsFromImage(img, e.cfg.Preprocess)

	cand, err := ocr.SelectBest(ctx, e.engine, variants, e.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("select transcript: %w", err)
	}

	if len(cand.Text) < e.cfg.MinTextLength {
		e.saveDebugArtifact(variants)
	}

	return e.ExtractText(cand.Text, cand.Strategy), nil
}

// ExtractText parses an existing transcript into a record without touching
// the OCR engine. Segmentation and field recognition run independently over
// the same text and merge at assembly.
func (e *Extractor) ExtractText(text, strategy string) *Result {
	sections := statblock.ExtractSections(text)
	fields := statblock.ExtractFields(text)
	record := statblock.AssembleRecord(fields, sections)

	return &Result{
		Record:   record,
		RawText:  text,
		Strategy: strategy,
		Complete: record.Complete(),
	}
}

// saveDebugArtifact persists the edge-threshold variant for operator
// diagnosis when the transcript came out suspiciously short. Failures are
// logged, never fatal.
func (e *Extractor) saveDebugArtifact(variants []preprocess.Variant) {
	if e.cfg.DebugDir == "" {
		return
	}
	for _, v := range variants {
		if v.Strategy != preprocess.StrategyEdgeThreshold {
			continue
		}
		if err := os.MkdirAll(e.cfg.DebugDir, 0o750); err != nil {
			slog.Warn("create debug dir failed", "dir", e.cfg.DebugDir, "error", err)
			return
		}
		path := filepath.Join(e.cfg.DebugDir, "debug_ocr_image.png")
		if err := imaging.Save(v.Image, path); err != nil {
			slog.Warn("save debug artifact failed", "path", path, "error", err)
			return
		}
		slog.Info("saved debug artifact", "path", path)
		return
	}
}
