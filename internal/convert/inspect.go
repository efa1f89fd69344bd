package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"

	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/pkg/imgutil"
)

// Finding is an advisory preflight note about one input file.
type Finding struct {
	File    string
	Message string
}

// Inspect looks over the discovered inputs for conditions that tend to
// produce surprising traces: files whose bytes are not really PNG, and
// rasters whose stored orientation is rotated. Nothing here blocks the
// run; the engine is the final authority on what it can place.
func Inspect(images []engine.InputImage) []Finding {
	var findings []Finding
	for _, img := range images {
		findings = append(findings, inspectOne(img)...)
	}
	return findings
}

func inspectOne(img engine.InputImage) []Finding {
	f, err := os.Open(img.Path)
	if err != nil {
		return []Finding{{File: img.Name, Message: fmt.Sprintf("unreadable: %v", err)}}
	}
	defer f.Close()

	kind, err := imgutil.SniffReader(f)
	if err != nil {
		return []Finding{{File: img.Name, Message: fmt.Sprintf("cannot determine file type: %v", err)}}
	}
	if kind != imgutil.KindPNG {
		return []Finding{{
			File:    img.Name,
			Message: fmt.Sprintf("named .png but the content looks like %s; the engine may refuse to place it", kind),
		}}
	}

	var findings []Finding
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return findings
	}
	if dims, err := imgutil.ReadDimensions(f); err == nil && (dims.Width == 0 || dims.Height == 0) {
		findings = append(findings, Finding{File: img.Name, Message: "zero-sized image"})
	}

	if o := orientationOf(f); o > 1 {
		findings = append(findings, Finding{
			File:    img.Name,
			Message: fmt.Sprintf("EXIF orientation %d: pixels are stored rotated and will be traced as stored", o),
		})
	}
	return findings
}

// orientationOf digs the EXIF orientation out of a PNG's eXIf chunk.
// Returns 0 when there is no EXIF or no orientation tag.
func orientationOf(f io.ReadSeeker) int {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0
	}
	payload, err := imgutil.ExifChunk(f)
	if err != nil || payload == nil {
		return 0
	}

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(bytes.NewReader(payload), nil, true)
	if err != nil {
		return 0
	}
	for _, tag := range tags {
		if tag.TagName != "Orientation" {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(tag.FormattedFirst)); err == nil {
			return v
		}
	}
	return 0
}
