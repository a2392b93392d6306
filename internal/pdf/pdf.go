// Package pdf pulls embedded page images out of scanned sourcebook PDFs so
// statblocks trapped in them can run through the same extraction pipeline as
// direct uploads. Rendering or exporting PDFs is out of scope.
package pdf

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageImage is one embedded image together with the 1-based page it came from.
type PageImage struct {
	Page  int
	Image image.Image
}

// ExtractPageImages extracts the embedded images of the selected pages,
// ordered by page number. pageRange accepts "3", "1-5", or "1,3,7-9"; empty
// means all pages. Pages without decodable images are simply absent from the
// result.
func ExtractPageImages(filename, pageRange string) ([]PageImage, error) {
	pages, err := parsePageRange(pageRange)
	if err != nil {
		return nil, fmt.Errorf("invalid page range %q: %w", pageRange, err)
	}

	tempDir, err := os.MkdirTemp("", "statscribe-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	var selected []string
	for _, p := range pages {
		selected = append(selected, strconv.Itoa(p))
	}

	if err := api.ExtractImagesFile(filename, tempDir, selected, nil); err != nil {
		return nil, fmt.Errorf("extract images from %s: %w", filename, err)
	}

	images, err := collectPageImages(tempDir)
	if err != nil {
		return nil, fmt.Errorf("load extracted images: %w", err)
	}
	return images, nil
}

// collectPageImages walks the extraction directory and decodes every image
// pdfcpu wrote, keyed by the page number encoded in its filename
// (page_<num>_...).
func collectPageImages(dir string) ([]PageImage, error) {
	var result []PageImage

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		page, perr := pageFromFilename(d.Name())
		if perr != nil {
			return nil
		}
		img, ierr := decodeImageFile(path)
		if ierr != nil {
			// Unsupported embedded formats are skipped, not fatal.
			return nil
		}
		result = append(result, PageImage{Page: page, Image: img})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Page < result[j].Page })
	return result, nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from our own temp dir
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	return img, err
}

// pageFromFilename parses the page number out of pdfcpu's extraction naming
// scheme, page_<num>_image_<idx>.<ext>.
func pageFromFilename(name string) (int, error) {
	rest, ok := strings.CutPrefix(name, "page_")
	if !ok {
		return 0, errors.New("not a page image")
	}
	numStr, _, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, errors.New("unexpected filename format")
	}
	return strconv.Atoi(numStr)
}

// parsePageRange expands a range expression like "1-5" or "1,3,5" into page
// numbers. Empty input selects all pages.
func parsePageRange(pageRange string) ([]int, error) {
	if pageRange == "" {
		return nil, nil
	}

	var pages []int
	for _, token := range strings.Split(pageRange, ",") {
		token = strings.TrimSpace(token)
		expanded, err := expandRangeToken(token)
		if err != nil {
			return nil, err
		}
		pages = append(pages, expanded...)
	}
	return pages, nil
}

func expandRangeToken(token string) ([]int, error) {
	first, second, isRange := strings.Cut(token, "-")
	if !isRange {
		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid page number: %s", token)
		}
		return []int{page}, nil
	}

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return nil, fmt.Errorf("invalid start page: %s", first)
	}
	end, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return nil, fmt.Errorf("invalid end page: %s", second)
	}
	if start > end {
		return nil, fmt.Errorf("start page %d greater than end page %d", start, end)
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out, nil
}
