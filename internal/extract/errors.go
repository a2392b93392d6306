package extract

import (
	"github.com/tomecraft/statscribe/internal/ocr"
	"github.com/tomecraft/statscribe/internal/preprocess"
)

// The pipeline's two fatal failures stay distinct so callers never conflate
// an unreadable upload with an OCR engine that simply found nothing.
var (
	// ErrImageDecode reports input bytes that are not a decodable image.
	ErrImageDecode = preprocess.ErrDecode

	// ErrNoText reports that no variant produced any text. No partial
	// record accompanies this error.
	ErrNoText = ocr.ErrNoText
)
