package convert

import (
	"os"

	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/pkg/imgutil"
)

// planBinding satisfies engine.Binding without a live engine. Geometry
// comes from the real files, so a dry run previews genuine sizes and
// trips over unreadable inputs at the same step a real run would.
// Export records the would-be path without writing anything.
type planBinding struct{}

func (planBinding) NewDocument() (engine.Document, error) {
	return &planDoc{}, nil
}

type planDoc struct{}

func (d *planDoc) Place(path string) (engine.PlacedItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dims, err := imgutil.ReadDimensions(f)
	if err != nil {
		return nil, err
	}
	return &planPlaced{w: float64(dims.Width), h: float64(dims.Height)}, nil
}

func (d *planDoc) SetCanvasSize(w, h float64) error { return nil }

func (d *planDoc) PageItems() ([]engine.PageItem, error) { return nil, nil }

func (d *planDoc) ScaleItems(pct float64) error { return nil }

func (d *planDoc) Export(string, engine.ExportOptions) error { return nil }

func (d *planDoc) Close() error { return nil }

type planPlaced struct{ w, h float64 }

func (p *planPlaced) Size() (float64, float64, error) { return p.w, p.h, nil }

func (p *planPlaced) Move(x, y float64) error { return nil }

func (p *planPlaced) Embed() error { return nil }

func (p *planPlaced) Trace() (engine.Tracing, error) { return planTracing{}, nil }

// planTracing accepts every parameter and expands trivially.
type planTracing struct{}

func (planTracing) SetColorFidelity(int) error { return nil }

func (planTracing) SetPathFitting(float64) error { return nil }

func (planTracing) SetIgnoreWhite(bool) error { return nil }

func (planTracing) ExpandTracing() error { return nil }
