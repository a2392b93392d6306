package ocr

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/tomecraft/statscribe/internal/preprocess"
)

// ErrNoText reports that every OCR invocation across all variants failed or
// returned empty text. The caller surfaces this as extraction failure rather
// than fabricating a result.
var ErrNoText = errors.New("ocr produced no text")

// Candidate is the transcript chosen from one preprocessed variant.
type Candidate struct {
	Text     string
	Strategy string
	Index    int
}

// SelectBest runs the engine over every variant concurrently and returns the
// longest transcript. Longer output on a structured statblock empirically
// correlates with more captured labels and section bodies, so length serves
// as a cheap quality proxy. Ties go to the earliest variant. Individual
// failures are logged and otherwise ignored; engines commonly fail on one
// variant while succeeding on another.
func SelectBest(ctx context.Context, engine Engine, variants []preprocess.Variant, workers int) (Candidate, error) {
	if len(variants) == 0 {
		return Candidate{}, ErrNoText
	}
	if workers <= 0 || workers > len(variants) {
		workers = len(variants)
	}

	texts := make([]string, len(variants))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(i int, v preprocess.Variant) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			text, err := engine.Recognize(ctx, v.Image)
			if err != nil {
				slog.Debug("ocr variant failed", "strategy", v.Strategy, "error", err)
				return
			}
			texts[i] = text
		}(i, v)
	}
	wg.Wait()

	best := Candidate{Index: -1}
	for i, text := range texts {
		if text == "" {
			continue
		}
		if len(text) > len(best.Text) {
			best = Candidate{Text: text, Strategy: variants[i].Strategy, Index: i}
		}
	}
	if best.Index == -1 {
		if err := ctx.Err(); err != nil {
			return Candidate{}, err
		}
		return Candidate{}, ErrNoText
	}
	return best, nil
}
