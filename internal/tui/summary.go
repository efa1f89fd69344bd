package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duocalvin/duosvg/internal/convert"
	"github.com/duocalvin/duosvg/internal/engine"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderFailures lists every failed conversion with the step that broke it.
// Returns an empty string when nothing failed.
func RenderFailures(results []engine.ConversionResult) string {
	var lines []string
	for _, r := range results {
		if r.Status != engine.Failed {
			continue
		}
		line := failStyle.Render("✗ ") + labelStyle.Render(r.Input.Name)
		if r.FailedStep != "" {
			line += dimStyle.Render("  failed at " + r.FailedStep)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderFindings lists preflight notes. A finding never stops the run;
// it explains a surprising result after the fact.
func RenderFindings(findings []convert.Finding) string {
	var lines []string
	for _, f := range findings {
		lines = append(lines, warnStyle.Render("! ")+labelStyle.Render(f.File)+dimStyle.Render("  "+f.Message))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
