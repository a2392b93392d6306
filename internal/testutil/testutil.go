// Package testutil provides shared helpers for statscribe tests: synthetic
// statblock images and canonical statblock text fixtures.
package testutil

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// CreateTestImage creates a flat-colored image with the given dimensions.
func CreateTestImage(width, height int, backgroundColor color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, backgroundColor)
		}
	}
	return img
}

// CreateNoisyImage creates a light image sprinkled with dark blocks, a rough
// stand-in for a photographed page.
func CreateNoisyImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Deterministic pseudo-texture so tests are reproducible.
			if (x*7+y*13)%29 == 0 {
				img.Set(x, y, color.Gray{Y: 40})
			} else {
				img.Set(x, y, color.Gray{Y: 230})
			}
		}
	}
	return img
}

// SaveImage writes an image as PNG, failing the test on error.
func SaveImage(t *testing.T, img image.Image, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to save image %s: %v", path, err)
	}
}

// LoadImage reads an image from disk, failing the test on error.
func LoadImage(t *testing.T, path string) image.Image {
	t.Helper()

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to load image %s: %v", path, err)
	}
	return img
}
