package engine

import (
	"math"

	"github.com/duocalvin/duosvg/internal/trace"
)

// fitScale computes the uniform factor that fits content of size
// curW x curH into the requested dimensions. Only dimensions that were
// actually requested (> 0) constrain the fit; with both set, the
// tighter ratio wins so nothing overflows.
func fitScale(curW, curH float64, targetW, targetH int) float64 {
	switch {
	case targetW > 0 && targetH > 0:
		return math.Min(float64(targetW)/curW, float64(targetH)/curH)
	case targetW > 0:
		return float64(targetW) / curW
	case targetH > 0:
		return float64(targetH) / curH
	}
	return 1.0
}

// finalCanvas resolves the exported canvas size after scaling: a
// requested dimension is honored exactly, an unrequested one follows
// the content proportionally.
func finalCanvas(curW, curH, s float64, targetW, targetH int) (w, h float64) {
	w = float64(targetW)
	if targetW <= 0 {
		w = curW * s
	}
	h = float64(targetH)
	if targetH <= 0 {
		h = curH * s
	}
	return w, h
}

// stepNormalizeSize applies the sizing directive to the traced result.
// Exact mode measures the union of all page item bounds, scales
// everything uniformly to fit, and resizes the canvas to the final
// dimensions. Scale mode multiplies item sizes and leaves the canvas
// alone.
func stepNormalizeSize(p *pipeline) error {
	sz := p.cfg.Sizing
	switch sz.Mode {
	case trace.SizeNone:
		return nil
	case trace.SizeScale:
		return p.doc.ScaleItems(sz.Factor * 100.0)
	}

	items, err := p.doc.PageItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	bounds := items[0].Bounds()
	for _, item := range items[1:] {
		bounds = bounds.Union(item.Bounds())
	}
	curW, curH := bounds.Width(), bounds.Height()
	if curW <= 0 || curH <= 0 {
		return nil
	}

	s := fitScale(curW, curH, sz.Width, sz.Height)
	if err := p.doc.ScaleItems(s * 100.0); err != nil {
		return err
	}
	w, h := finalCanvas(curW, curH, s, sz.Width, sz.Height)
	return p.doc.SetCanvasSize(w, h)
}
