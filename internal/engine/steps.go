package engine

import (
	"path/filepath"
	"strings"
)

// Output conventions shared between the in-process runner, the generated
// control script, and the final summary.
const (
	// OutputFolderName is the subfolder created next to the input
	// images that receives the exported vectors.
	OutputFolderName = "SVG"
	// VectorExt is the export format's file extension.
	VectorExt = ".svg"
)

// Step names. The control script reports failures under these same
// labels, so in-process results and scripted results read identically.
const (
	StepCreateDocument   = "create document"
	StepPlaceImage       = "place image"
	StepResizeCanvas     = "resize canvas"
	StepEmbedImage       = "embed image"
	StepTraceImage       = "trace image"
	StepExpandTracing    = "expand tracing"
	StepRemoveBackground = "remove background"
	StepNormalizeSize    = "normalize size"
	StepExport           = "export"
)

type step struct {
	name       string
	bestEffort bool
	run        func(*pipeline) error
}

// pipelineSteps is the fixed per-image sequence. A best-effort step may
// fail without failing the image; any other failure aborts the image
// with the step name recorded. Document cleanup is not listed here
// because it runs unconditionally, whatever happens above it.
var pipelineSteps = []step{
	{name: StepCreateDocument, run: stepCreateDocument},
	{name: StepPlaceImage, run: stepPlaceImage},
	{name: StepResizeCanvas, run: stepResizeCanvas},
	{name: StepEmbedImage, run: stepEmbedImage},
	{name: StepTraceImage, run: stepTrace},
	{name: StepExpandTracing, run: stepExpand},
	{name: StepRemoveBackground, bestEffort: true, run: stepRemoveBackground},
	{name: StepNormalizeSize, bestEffort: true, run: stepNormalizeSize},
	{name: StepExport, run: stepExport},
}

// StepNames returns the pipeline's step labels in execution order.
func StepNames() []string {
	names := make([]string, len(pipelineSteps))
	for i, st := range pipelineSteps {
		names[i] = st.name
	}
	return names
}

// VectorName maps a raster file name to its exported vector name.
func VectorName(rasterName string) string {
	return strings.TrimSuffix(rasterName, filepath.Ext(rasterName)) + VectorExt
}
