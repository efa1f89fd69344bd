package convert

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/internal/illustrator"
)

// assembleBatch correlates the planned inputs with the engine's run
// report. Every input yields exactly one result. An input missing from
// the report (the engine died mid-batch, or the report tail was cut off)
// falls back to checking whether its exported file exists.
func assembleBatch(images []engine.InputImage, lines []illustrator.ReportLine, outDir string) engine.BatchResult {
	byFile := make(map[string]illustrator.ReportLine, len(lines))
	for _, line := range lines {
		byFile[line.File] = line
	}

	batch := engine.BatchResult{
		Total:        len(images),
		Results:      make([]engine.ConversionResult, 0, len(images)),
		OutputFolder: outDir,
	}
	for _, img := range images {
		batch.Results = append(batch.Results, resultFor(img, byFile, outDir))
	}
	return batch
}

func resultFor(img engine.InputImage, byFile map[string]illustrator.ReportLine, outDir string) engine.ConversionResult {
	line, reported := byFile[img.Name]
	if reported && line.Status == illustrator.StatusOK {
		out := line.Output
		if out == "" {
			out = engine.VectorName(img.Name)
		}
		return engine.ConversionResult{
			Input:      img,
			Status:     engine.Success,
			OutputPath: filepath.Join(outDir, out),
		}
	}
	if reported {
		return engine.ConversionResult{
			Input:      img,
			Status:     engine.Failed,
			FailedStep: line.Step,
			Err:        &engine.StepError{Step: line.Step, Err: errors.New(line.Error)},
		}
	}

	path := filepath.Join(outDir, engine.VectorName(img.Name))
	if _, err := os.Stat(path); err == nil {
		return engine.ConversionResult{
			Input:      img,
			Status:     engine.Success,
			OutputPath: path,
		}
	}
	return engine.ConversionResult{
		Input:  img,
		Status: engine.Failed,
		Err:    errors.New("no report entry and no exported file"),
	}
}
