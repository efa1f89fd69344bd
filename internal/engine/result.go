package engine

import "fmt"

// InputImage is one raster file located during discovery. The batch is
// enumerated once up front; files appearing later are not picked up.
type InputImage struct {
	Path string
	Name string
}

// Status is the outcome of a single image's pipeline.
type Status int

const (
	Success Status = iota
	Failed
)

func (s Status) String() string {
	if s == Failed {
		return "failed"
	}
	return "ok"
}

// StepError labels a pipeline failure with the step it happened in.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ConversionResult is the per-image outcome. FailedStep and Err are set
// only when Status is Failed; OutputPath only on success.
type ConversionResult struct {
	Input      InputImage
	Status     Status
	FailedStep string
	OutputPath string
	Err        error
}

// BatchResult aggregates one run. len(Results) always equals Total: a
// failing image yields a Failed entry, never an omission.
type BatchResult struct {
	Total        int
	Results      []ConversionResult
	OutputFolder string
}

func (b BatchResult) FailedCount() int {
	n := 0
	for _, r := range b.Results {
		if r.Status == Failed {
			n++
		}
	}
	return n
}

func (b BatchResult) SucceededCount() int { return b.Total - b.FailedCount() }
