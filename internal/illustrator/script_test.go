package illustrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/internal/trace"
)

func renderToString(t *testing.T, p Params) string {
	t.Helper()
	content, err := Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(content)
}

func baseParams() Params {
	opts := trace.Defaults()
	opts.ColorCount = 16
	return Params{
		InputFolder:  "/Users/demo/scans",
		OutputFolder: "/Users/demo/scans/SVG",
		ReportPath:   "/tmp/duosvg-run.jsonl",
		Config:       trace.Translate(opts),
	}
}

func TestRenderEmbedsRunParameters(t *testing.T) {
	script := renderToString(t, baseParams())

	for _, want := range []string{
		`var INPUT_FOLDER = "/Users/demo/scans";`,
		`var OUTPUT_FOLDER = "/Users/demo/scans/SVG";`,
		`var REPORT_PATH = "/tmp/duosvg-run.jsonl";`,
		`colorFidelity: 50,`,
		`pathFitting: 5.25,`,
		`ignoreWhite: true,`,
		`sizeMode: "none",`,
		`var WHITE_CHANNEL_MIN = 240;`,
		`var WHITE_GRAY_MIN = 90;`,
		`app.quit();`,
		`SaveOptions.DONOTSAVECHANGES`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestRenderCarriesStepNames(t *testing.T) {
	script := renderToString(t, baseParams())
	for _, name := range engine.StepNames() {
		if !strings.Contains(script, `"`+name+`"`) {
			t.Errorf("script missing step label %q", name)
		}
	}
}

func TestRenderUnsetFidelity(t *testing.T) {
	p := baseParams()
	p.Config = trace.Translate(trace.Defaults())
	script := renderToString(t, p)
	if !strings.Contains(script, "colorFidelity: -1,") {
		t.Fatal("unset color fidelity should render as -1")
	}
}

func TestRenderExactSizing(t *testing.T) {
	opts := trace.Defaults()
	opts.OutputWidthPx = 500
	p := baseParams()
	p.Config = trace.Translate(opts)

	script := renderToString(t, p)
	for _, want := range []string{`sizeMode: "exact",`, `targetWidth: 500,`, `targetHeight: 0,`} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestRenderScaleSizing(t *testing.T) {
	opts := trace.Defaults()
	opts.OutputScale = 2.5
	p := baseParams()
	p.Config = trace.Translate(opts)

	script := renderToString(t, p)
	for _, want := range []string{`sizeMode: "scale",`, `scalePercent: 250`} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestRenderEscapesPaths(t *testing.T) {
	p := baseParams()
	p.InputFolder = `/Users/de"mo/scans`
	script := renderToString(t, p)
	if strings.Contains(script, `= "/Users/de"mo/scans";`) {
		t.Fatal("quote in path not escaped")
	}
}

func TestWriteScript(t *testing.T) {
	path, err := WriteScript(baseParams())
	if err != nil {
		t.Fatalf("WriteScript: %v", err)
	}
	defer os.Remove(path)

	if filepath.Ext(path) != ".jsx" {
		t.Fatalf("script path %q, want .jsx extension", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading script back: %v", err)
	}
	if !strings.Contains(string(content), "duosvg control payload") {
		t.Fatal("written file does not look like the payload")
	}

	other, err := WriteScript(baseParams())
	if err != nil {
		t.Fatalf("WriteScript: %v", err)
	}
	defer os.Remove(other)
	if other == path {
		t.Fatal("script paths collide across runs")
	}
}

func TestTempReportPathUnique(t *testing.T) {
	a, b := TempReportPath(), TempReportPath()
	if a == b {
		t.Fatal("report paths collide")
	}
	if filepath.Ext(a) != ".jsonl" {
		t.Fatalf("report path %q, want .jsonl extension", a)
	}
}
