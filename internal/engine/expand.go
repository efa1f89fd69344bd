package engine

import (
	"errors"
	"fmt"
)

var errExpandUnsupported = errors.New("not supported by this engine")

// expandStrategies are tried in order, first success wins. Engines vary
// in which expansion routes they expose, so each strategy probes for its
// capability before using it.
var expandStrategies = []struct {
	name string
	run  func(doc Document, t Tracing) error
}{
	{"expand-tracing call", expandViaTracing},
	{"object expand", expandViaItem},
	{"expand command", expandViaCommand},
}

func expandViaTracing(_ Document, t Tracing) error {
	x, ok := t.(TracingExpander)
	if !ok {
		return errExpandUnsupported
	}
	return x.ExpandTracing()
}

func expandViaItem(_ Document, t Tracing) error {
	x, ok := t.(ItemExpander)
	if !ok {
		return errExpandUnsupported
	}
	return x.Expand()
}

func expandViaCommand(doc Document, t Tracing) error {
	x, ok := doc.(SelectionExpander)
	if !ok {
		return errExpandUnsupported
	}
	return x.ExpandSelection(t)
}

// stepExpand converts the live tracing into editable vector paths. Only
// when every strategy fails does the step fail, reporting the last
// strategy's error.
func stepExpand(p *pipeline) error {
	var lastErr error
	for _, strat := range expandStrategies {
		err := strat.run(p.doc, p.tracing)
		if err == nil {
			return nil
		}
		lastErr = fmt.Errorf("%s: %w", strat.name, err)
	}
	return lastErr
}
