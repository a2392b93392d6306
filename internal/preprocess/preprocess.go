// Package preprocess turns one decoded statblock photograph into an ordered
// set of enhanced image variants. OCR engines respond very differently to
// contrast, binarization and edge handling depending on the source material,
// so every variant is fed to the engine and the best transcript wins
// downstream.
package preprocess

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

// Strategy identifiers, in the order variants are produced. Order matters
// only as a tie-break when two variants yield equally long OCR text.
const (
	StrategyContrastSharpen = "contrast-sharpen"
	StrategyBinaryThreshold = "binary-threshold"
	StrategyEdgeThreshold   = "edge-threshold"
)

// ErrDecode reports input bytes that are not a decodable image.
var ErrDecode = errors.New("image decode failed")

// Variant is one preprocessed rendition of the input image.
type Variant struct {
	Strategy string
	Image    image.Image
}

// Config holds the preprocessing tunables. The cutoffs were chosen
// empirically against photographed statblocks with colored or textured
// backgrounds.
type Config struct {
	// MinDimension is the floor for the narrower image dimension; smaller
	// inputs are upscaled uniformly before any transform, since tiny glyphs
	// starve the OCR engine of resolvable detail.
	MinDimension int
	// ContrastBoost is the percentage passed to the contrast adjustment in
	// the contrast-sharpen variant.
	ContrastBoost float64
	// SharpenSigma controls the sharpening filter of the contrast-sharpen
	// variant.
	SharpenSigma float64
	// BinaryCutoff is the luminance threshold (0-255) for the plain
	// binarization variant.
	BinaryCutoff uint8
	// EdgeCutoff is the lower threshold used after edge enhancement, to
	// counter colored backgrounds bleeding into the foreground.
	EdgeCutoff uint8
	// UnsharpRadius and UnsharpAmount parameterize the edge-enhancement
	// pass of the edge-threshold variant.
	UnsharpRadius float64
	UnsharpAmount float64
}

// DefaultConfig returns the preprocessing defaults.
func DefaultConfig() Config {
	return Config{
		MinDimension:  800,
		ContrastBoost: 50,
		SharpenSigma:  1.0,
		BinaryCutoff:  150,
		EdgeCutoff:    120,
		UnsharpRadius: 3.0,
		UnsharpAmount: 1.5,
	}
}

// Variants decodes raw image bytes and produces the preprocessed variants.
// Undecodable input fails with ErrDecode; there is no fallback.
func Variants(data []byte, cfg Config) ([]Variant, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return VariantsFromImage(img, cfg), nil
}

// VariantsFromImage produces the preprocessed variants from an already
// decoded image. The transforms are independent: no variant builds on
// another's output.
func VariantsFromImage(img image.Image, cfg Config) []Variant {
	img = upscale(img, cfg.MinDimension)

	gray := imaging.Grayscale(img)

	contrast := imaging.AdjustContrast(gray, cfg.ContrastBoost)
	sharpened := imaging.Sharpen(contrast, cfg.SharpenSigma)

	binary := segment.Threshold(gray, cfg.BinaryCutoff)

	edges := effect.UnsharpMask(img, cfg.UnsharpRadius, cfg.UnsharpAmount)
	edgeBinary := segment.Threshold(imaging.Grayscale(edges), cfg.EdgeCutoff)

	return []Variant{
		{Strategy: StrategyContrastSharpen, Image: sharpened},
		{Strategy: StrategyBinaryThreshold, Image: binary},
		{Strategy: StrategyEdgeThreshold, Image: edgeBinary},
	}
}

// upscale resizes the image uniformly with Lanczos resampling when its
// narrower dimension is below the floor. Larger images pass through.
func upscale(img image.Image, minDim int) image.Image {
	if minDim <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	narrow := w
	if h < w {
		narrow = h
	}
	if narrow >= minDim || narrow == 0 {
		return img
	}
	scale := float64(minDim) / float64(narrow)
	return imaging.Resize(img, int(float64(w)*scale+0.5), int(float64(h)*scale+0.5), imaging.Lanczos)
}
