package engine

import (
	"path/filepath"

	"github.com/duocalvin/duosvg/internal/trace"
)

// pipeline carries one image's state across steps.
type pipeline struct {
	img     InputImage
	cfg     trace.Config
	binding Binding
	outDir  string

	doc     Document
	placed  PlacedItem
	tracing Tracing
	outPath string
}

// RunImage converts a single raster through the fixed step sequence and
// reports the outcome. Every failure is folded into the returned result,
// and the document is closed without saving no matter which step broke.
func RunImage(img InputImage, cfg trace.Config, b Binding, outDir string) ConversionResult {
	res := ConversionResult{Input: img}
	p := &pipeline{img: img, cfg: cfg, binding: b, outDir: outDir}

	defer func() {
		if p.doc != nil {
			_ = p.doc.Close()
		}
	}()

	for _, st := range pipelineSteps {
		err := st.run(p)
		if err == nil || st.bestEffort {
			continue
		}
		res.Status = Failed
		res.FailedStep = st.name
		res.Err = &StepError{Step: st.name, Err: err}
		return res
	}

	res.Status = Success
	res.OutputPath = p.outPath
	return res
}

func stepCreateDocument(p *pipeline) error {
	doc, err := p.binding.NewDocument()
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

func stepPlaceImage(p *pipeline) error {
	placed, err := p.doc.Place(p.img.Path)
	if err != nil {
		return err
	}
	p.placed = placed
	return nil
}

// stepResizeCanvas matches the canvas to the placed raster's native
// pixel size and parks the image at the origin, so the later trace and
// export see a 1:1 canvas.
func stepResizeCanvas(p *pipeline) error {
	w, h, err := p.placed.Size()
	if err != nil {
		return err
	}
	if err := p.doc.SetCanvasSize(w, h); err != nil {
		return err
	}
	return p.placed.Move(0, 0)
}

func stepEmbedImage(p *pipeline) error {
	return p.placed.Embed()
}

// stepTrace runs the engine's default trace, then adjusts its
// parameters. A rejected parameter leaves the engine default in place
// rather than failing the image; failing to trace at all is fatal.
func stepTrace(p *pipeline) error {
	t, err := p.placed.Trace()
	if err != nil {
		return err
	}
	if p.cfg.ColorFidelity >= 0 {
		_ = t.SetColorFidelity(p.cfg.ColorFidelity)
	}
	_ = t.SetPathFitting(p.cfg.PathFitting)
	_ = t.SetIgnoreWhite(p.cfg.IgnoreWhiteBackground)
	p.tracing = t
	return nil
}

func stepRemoveBackground(p *pipeline) error {
	if !p.cfg.IgnoreWhiteBackground {
		return nil
	}
	return removeLargestWhiteShape(p.doc)
}

func stepExport(p *pipeline) error {
	path := filepath.Join(p.outDir, VectorName(p.img.Name))
	err := p.doc.Export(path, ExportOptions{EmbedRasters: false, ClipToArtboard: true})
	if err != nil {
		return err
	}
	p.outPath = path
	return nil
}
