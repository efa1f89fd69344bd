package engine

import (
	"errors"
	"os"

	"github.com/duocalvin/duosvg/internal/trace"
)

// ErrNoImages is returned when a batch is started with nothing to do.
var ErrNoImages = errors.New("no input images")

// RunBatch converts every image in enumeration order. Per-image failures
// are isolated: a broken image produces a Failed entry and the batch
// moves on, so the result always carries exactly one entry per input.
// The output folder is created up front; an existing folder is reused
// as is. onResult, when non-nil, is called after each image completes.
func RunBatch(images []InputImage, cfg trace.Config, b Binding, outDir string, onResult func(ConversionResult)) (BatchResult, error) {
	if len(images) == 0 {
		return BatchResult{}, ErrNoImages
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, err
	}

	batch := BatchResult{
		Total:        len(images),
		Results:      make([]ConversionResult, 0, len(images)),
		OutputFolder: outDir,
	}
	for _, img := range images {
		res := RunImage(img, cfg, b, outDir)
		batch.Results = append(batch.Results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return batch, nil
}
