package engine

import "math"

// Binding is the capability surface the pipeline needs from a vector
// engine. Production runs hand the same sequence to the live application
// through a generated control script; tests and dry runs use in-process
// implementations.
type Binding interface {
	// NewDocument opens a blank canvas.
	NewDocument() (Document, error)
}

// Document is an open canvas inside the engine.
type Document interface {
	// Place imports a raster file as a placed item.
	Place(path string) (PlacedItem, error)
	// SetCanvasSize resizes the document bounds.
	SetCanvasSize(width, height float64) error
	// PageItems enumerates everything currently on the canvas.
	PageItems() ([]PageItem, error)
	// ScaleItems scales all page items uniformly by the given percent
	// (100 = unchanged).
	ScaleItems(percent float64) error
	// Export writes the document as a vector file.
	Export(path string, opts ExportOptions) error
	// Close discards the document without saving.
	Close() error
}

// PlacedItem is an imported raster reference on the canvas.
type PlacedItem interface {
	// Size reports the item's native pixel dimensions.
	Size() (width, height float64, err error)
	// Move positions the item at the given document coordinates.
	Move(x, y float64) error
	// Embed converts the placed reference into embedded raster data.
	Embed() error
	// Trace runs the engine's default trace and returns the live result.
	Trace() (Tracing, error)
}

// Tracing is a live trace result whose parameters can be adjusted after
// the fact. Each setter may reject its parameter, leaving the engine
// default in place; the runner treats such rejections as best-effort.
type Tracing interface {
	SetColorFidelity(pct int) error
	SetPathFitting(tolerance float64) error
	SetIgnoreWhite(on bool) error
}

// Expansion capabilities are optional and discovered by type assertion,
// in the order the expand step tries them.
type (
	// TracingExpander is the dedicated expand-tracing call.
	TracingExpander interface {
		ExpandTracing() error
	}
	// ItemExpander is the generic object-level expand.
	ItemExpander interface {
		Expand() error
	}
	// SelectionExpander selects the trace result and invokes the
	// engine's generic expand command. Implemented by documents.
	SelectionExpander interface {
		ExpandSelection(t Tracing) error
	}
)

// PageItem is an object on the canvas after expansion.
type PageItem interface {
	Bounds() Rect
	Filled() bool
	Closed() bool
	FillColor() Color
	Remove() error
}

// ExportOptions mirrors the engine's vector export switches.
type ExportOptions struct {
	// EmbedRasters keeps raster data inside the exported file.
	EmbedRasters bool
	// ClipToArtboard crops the export to the canvas bounds.
	ClipToArtboard bool
}

// ColorModel tags how a fill color is expressed.
type ColorModel int

const (
	ColorNone ColorModel = iota
	ColorRGB
	ColorGray
)

// Color is a page item's fill: RGB channels in 0-255, or a grayscale
// value in 0-100.
type Color struct {
	Model   ColorModel
	R, G, B float64
	Gray    float64
}

// Rect is an axis-aligned bounding box in document coordinates, y up
// (Top > Bottom).
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Max(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
	}
}
