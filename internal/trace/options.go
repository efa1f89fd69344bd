package trace

import (
	"fmt"

	"github.com/duocalvin/duosvg/internal/apperrors"
)

// Options carries the user-facing tracing and output parameters as they
// arrive from the CLI, before normalization.
type Options struct {
	// ColorCount is the requested palette size, 2-30. 0 means unset.
	ColorCount int
	// ColorFidelityPct is the engine-native color fidelity, 0-100.
	// -1 means unset. When both ColorCount and ColorFidelityPct are
	// given, fidelity wins.
	ColorFidelityPct int
	// PathDetailPct is the requested path detail, 1-100. Higher detail
	// produces a tighter path fit.
	PathDetailPct int
	// TransparentBackground requests removal of the traced page
	// background.
	TransparentBackground bool
	// OutputScale is a uniform output scale factor. 0 or 1.0 means no
	// scaling.
	OutputScale float64
	// OutputWidthPx and OutputHeightPx request an exact output size in
	// pixels. 0 means unspecified. Exact sizing takes precedence over
	// OutputScale.
	OutputWidthPx  int
	OutputHeightPx int
}

// Defaults returns the options the CLI starts from.
func Defaults() Options {
	return Options{
		ColorFidelityPct:      -1,
		PathDetailPct:         50,
		TransparentBackground: true,
		OutputScale:           1.0,
	}
}

// Validate rejects out-of-domain values. It runs before anything is
// launched so a bad flag never spawns an engine process.
func (o Options) Validate() error {
	if o.ColorCount != 0 && (o.ColorCount < 2 || o.ColorCount > 30) {
		return apperrors.Validation(fmt.Sprintf("--colors must be between 2 and 30, got %d", o.ColorCount))
	}
	if o.ColorFidelityPct != -1 && (o.ColorFidelityPct < 0 || o.ColorFidelityPct > 100) {
		return apperrors.Validation(fmt.Sprintf("--colors-pct must be between 0 and 100, got %d", o.ColorFidelityPct))
	}
	if o.PathDetailPct < 1 || o.PathDetailPct > 100 {
		return apperrors.Validation(fmt.Sprintf("--paths must be between 1 and 100, got %d", o.PathDetailPct))
	}
	if o.OutputScale < 0 {
		return apperrors.Validation(fmt.Sprintf("--scale must be positive, got %g", o.OutputScale))
	}
	if o.OutputWidthPx < 0 {
		return apperrors.Validation(fmt.Sprintf("--out-w must be positive, got %d", o.OutputWidthPx))
	}
	if o.OutputHeightPx < 0 {
		return apperrors.Validation(fmt.Sprintf("--out-h must be positive, got %d", o.OutputHeightPx))
	}
	return nil
}
