package engine

import "errors"

// Scriptable in-process binding used across the package tests. Optional
// expansion capabilities are modeled as distinct types so tests can pick
// exactly which interfaces a document or tracing satisfies.

type fakeBinding struct {
	docs    []Document
	err     error
	created int
}

func (b *fakeBinding) NewDocument() (Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.created >= len(b.docs) {
		return nil, errors.New("fakeBinding: no document scripted for this call")
	}
	doc := b.docs[b.created]
	b.created++
	return doc, nil
}

// fakeDoc implements Document but not SelectionExpander.
type fakeDoc struct {
	placed   *fakePlaced
	placeErr error
	placedAt []string

	canvasW, canvasH []float64
	canvasErr        error

	items    []*fakeItem
	itemsErr error

	scaledPct []float64
	scaleErr  error

	exportPath string
	exportOpts ExportOptions
	exportErr  error

	closed bool
}

func (d *fakeDoc) Place(path string) (PlacedItem, error) {
	d.placedAt = append(d.placedAt, path)
	if d.placeErr != nil {
		return nil, d.placeErr
	}
	return d.placed, nil
}

func (d *fakeDoc) SetCanvasSize(w, h float64) error {
	if d.canvasErr != nil {
		return d.canvasErr
	}
	d.canvasW = append(d.canvasW, w)
	d.canvasH = append(d.canvasH, h)
	return nil
}

func (d *fakeDoc) PageItems() ([]PageItem, error) {
	if d.itemsErr != nil {
		return nil, d.itemsErr
	}
	out := make([]PageItem, len(d.items))
	for i, it := range d.items {
		out[i] = it
	}
	return out, nil
}

func (d *fakeDoc) ScaleItems(pct float64) error {
	if d.scaleErr != nil {
		return d.scaleErr
	}
	d.scaledPct = append(d.scaledPct, pct)
	return nil
}

func (d *fakeDoc) Export(path string, opts ExportOptions) error {
	if d.exportErr != nil {
		return d.exportErr
	}
	d.exportPath = path
	d.exportOpts = opts
	return nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// commandDoc additionally supports the document-level expand command.
type commandDoc struct {
	*fakeDoc
	selErr      error
	selExpanded bool
}

func (d *commandDoc) ExpandSelection(Tracing) error {
	if d.selErr != nil {
		return d.selErr
	}
	d.selExpanded = true
	return nil
}

type fakePlaced struct {
	w, h    float64
	sizeErr error

	moved          bool
	movedX, movedY float64

	embedded bool
	embedErr error

	tracing  Tracing
	traceErr error
}

func (p *fakePlaced) Size() (float64, float64, error) {
	if p.sizeErr != nil {
		return 0, 0, p.sizeErr
	}
	return p.w, p.h, nil
}

func (p *fakePlaced) Move(x, y float64) error {
	p.moved = true
	p.movedX, p.movedY = x, y
	return nil
}

func (p *fakePlaced) Embed() error {
	if p.embedErr != nil {
		return p.embedErr
	}
	p.embedded = true
	return nil
}

func (p *fakePlaced) Trace() (Tracing, error) {
	if p.traceErr != nil {
		return nil, p.traceErr
	}
	return p.tracing, nil
}

// fakeTracing implements Tracing with no expansion capability.
type fakeTracing struct {
	fidelity int
	fitting  float64
	ignore   bool
	setCalls []string
	reject   error
}

func (t *fakeTracing) SetColorFidelity(v int) error {
	t.setCalls = append(t.setCalls, "fidelity")
	if t.reject != nil {
		return t.reject
	}
	t.fidelity = v
	return nil
}

func (t *fakeTracing) SetPathFitting(v float64) error {
	t.setCalls = append(t.setCalls, "fitting")
	if t.reject != nil {
		return t.reject
	}
	t.fitting = v
	return nil
}

func (t *fakeTracing) SetIgnoreWhite(on bool) error {
	t.setCalls = append(t.setCalls, "ignore")
	if t.reject != nil {
		return t.reject
	}
	t.ignore = on
	return nil
}

// expandableTracing supports the dedicated expand-tracing call.
type expandableTracing struct {
	*fakeTracing
	expandErr error
	expanded  bool
}

func (t *expandableTracing) ExpandTracing() error {
	if t.expandErr != nil {
		return t.expandErr
	}
	t.expanded = true
	return nil
}

// dualTracing supports both tracing-level routes, recording which ran.
type dualTracing struct {
	*fakeTracing
	tracingErr error
	objectErr  error
	via        string
}

func (t *dualTracing) ExpandTracing() error {
	if t.tracingErr != nil {
		return t.tracingErr
	}
	t.via = "tracing"
	return nil
}

func (t *dualTracing) Expand() error {
	if t.objectErr != nil {
		return t.objectErr
	}
	t.via = "object"
	return nil
}

type fakeItem struct {
	bounds    Rect
	filled    bool
	closed    bool
	fill      Color
	removed   bool
	removeErr error
}

func (i *fakeItem) Bounds() Rect     { return i.bounds }
func (i *fakeItem) Filled() bool     { return i.filled }
func (i *fakeItem) Closed() bool     { return i.closed }
func (i *fakeItem) FillColor() Color { return i.fill }

func (i *fakeItem) Remove() error {
	if i.removeErr != nil {
		return i.removeErr
	}
	i.removed = true
	return nil
}

// workingDoc builds a document wired so every step succeeds, returning
// handles to the inner fakes for assertions.
func workingDoc() (*commandDoc, *fakePlaced, *expandableTracing) {
	tr := &expandableTracing{fakeTracing: &fakeTracing{}}
	placed := &fakePlaced{w: 200, h: 100, tracing: tr}
	doc := &commandDoc{fakeDoc: &fakeDoc{placed: placed}}
	return doc, placed, tr
}
