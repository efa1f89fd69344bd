package trace

import "math"

// SizingMode selects how the traced output is resized before export.
type SizingMode int

const (
	SizeNone SizingMode = iota
	SizeExact
	SizeScale
)

// Sizing is the normalized output-sizing directive.
type Sizing struct {
	Mode SizingMode
	// Width and Height apply to SizeExact; 0 means that dimension is
	// unspecified and follows the other proportionally.
	Width  int
	Height int
	// Factor applies to SizeScale.
	Factor float64
}

// Config holds engine-ready tracing parameters. It is built once per
// batch run and shared read-only across all per-file pipelines.
type Config struct {
	// ColorFidelity is 0-100, or -1 to leave the engine default in place.
	ColorFidelity int
	// PathFitting is the engine tolerance in [0.5, 10.0]; lower values
	// fit paths tighter to pixel edges.
	PathFitting           float64
	IgnoreWhiteBackground bool
	Sizing                Sizing
}

const (
	pathFittingMax = 10.0
	pathFittingMin = 0.5
)

// Translate maps user options to engine parameters. It is pure and never
// fails; values outside the expected ranges are clamped, rejection is
// Validate's job.
func Translate(o Options) Config {
	return Config{
		ColorFidelity:         translateFidelity(o),
		PathFitting:           translateFitting(o.PathDetailPct),
		IgnoreWhiteBackground: o.TransparentBackground,
		Sizing:                translateSizing(o),
	}
}

func translateFidelity(o Options) int {
	if o.ColorFidelityPct >= 0 {
		return clampInt(o.ColorFidelityPct, 0, 100)
	}
	if o.ColorCount != 0 {
		fidelity := int(math.Round(float64(o.ColorCount-2) * 100.0 / 28.0))
		return clampInt(fidelity, 0, 100)
	}
	return -1
}

// translateFitting inverts path detail into fitting tolerance: more
// requested detail means a tighter fit.
func translateFitting(detailPct int) float64 {
	detail := float64(clampInt(detailPct, 1, 100))
	return pathFittingMax - (detail/100.0)*(pathFittingMax-pathFittingMin)
}

func translateSizing(o Options) Sizing {
	if o.OutputWidthPx > 0 || o.OutputHeightPx > 0 {
		return Sizing{Mode: SizeExact, Width: o.OutputWidthPx, Height: o.OutputHeightPx}
	}
	if o.OutputScale > 0 && o.OutputScale != 1.0 {
		return Sizing{Mode: SizeScale, Factor: o.OutputScale}
	}
	return Sizing{Mode: SizeNone}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
