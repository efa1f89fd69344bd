package illustrator

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
)

// Statuses the control script writes into the run report.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// ReportLine is one JSONL record, one per processed image.
type ReportLine struct {
	File   string `json:"file"`
	Status string `json:"status"`
	Step   string `json:"step,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ParseReport reads the run report. A missing file yields no lines and
// no error: the engine may not have started writing yet, and callers
// fall back to checking exported files directly.
func ParseReport(path string) ([]ReportLine, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return parseReportLines(f)
}

// parseReportLines stops quietly at the first malformed line. The engine
// appends as it goes and can die mid-write, so a broken tail is
// expected; everything before it is still valid.
func parseReportLines(r io.Reader) ([]ReportLine, error) {
	var lines []ReportLine
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var line ReportLine
		if err := json.Unmarshal([]byte(text), &line); err != nil {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}
