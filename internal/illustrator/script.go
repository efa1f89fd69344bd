package illustrator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/uuid"

	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/internal/trace"
)

// Params carries everything the control script embeds for one run. All
// paths must be absolute: the engine resolves nothing relative to us.
type Params struct {
	InputFolder  string
	OutputFolder string
	ReportPath   string
	Config       trace.Config
}

type scriptData struct {
	InputFolder  string
	OutputFolder string
	ReportPath   string

	ColorFidelity int
	PathFitting   float64
	IgnoreWhite   bool
	SizeMode      string
	TargetWidth   int
	TargetHeight  int
	ScalePercent  float64

	WhiteChannelMin int
	WhiteGrayMin    int

	StepCreate     string
	StepPlace      string
	StepResize     string
	StepEmbed      string
	StepTrace      string
	StepExpand     string
	StepBackground string
	StepNormalize  string
	StepExport     string

	StatusOK     string
	StatusFailed string
}

var scriptTemplate = template.Must(template.New("payload").Parse(payloadSrc))

// Render produces the control script for one run. The script carries the
// full batch: the engine enumerates the input folder itself, converts
// each PNG through the same step sequence the in-process runner uses,
// appends one report line per image, and quits the application when the
// batch ends.
func Render(p Params) ([]byte, error) {
	data := scriptData{
		InputFolder:  p.InputFolder,
		OutputFolder: p.OutputFolder,
		ReportPath:   p.ReportPath,

		ColorFidelity: p.Config.ColorFidelity,
		PathFitting:   p.Config.PathFitting,
		IgnoreWhite:   p.Config.IgnoreWhiteBackground,
		SizeMode:      "none",
		ScalePercent:  100,

		WhiteChannelMin: engine.WhiteChannelMin,
		WhiteGrayMin:    engine.WhiteGrayMin,

		StepCreate:     engine.StepCreateDocument,
		StepPlace:      engine.StepPlaceImage,
		StepResize:     engine.StepResizeCanvas,
		StepEmbed:      engine.StepEmbedImage,
		StepTrace:      engine.StepTraceImage,
		StepExpand:     engine.StepExpandTracing,
		StepBackground: engine.StepRemoveBackground,
		StepNormalize:  engine.StepNormalizeSize,
		StepExport:     engine.StepExport,

		StatusOK:     StatusOK,
		StatusFailed: StatusFailed,
	}
	switch p.Config.Sizing.Mode {
	case trace.SizeExact:
		data.SizeMode = "exact"
		data.TargetWidth = p.Config.Sizing.Width
		data.TargetHeight = p.Config.Sizing.Height
	case trace.SizeScale:
		data.SizeMode = "scale"
		data.ScalePercent = p.Config.Sizing.Factor * 100
	}

	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering control script: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteScript renders the payload into a uniquely named file under the
// system temp directory and returns its path.
func WriteScript(p Params) (string, error) {
	content, err := Render(p)
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), "duosvg-"+uuid.NewString()+".jsx")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing control script: %w", err)
	}
	return path, nil
}

// TempReportPath returns a fresh run-report path. The script creates the
// file itself; we only pick a name that cannot collide across runs.
func TempReportPath() string {
	return filepath.Join(os.TempDir(), "duosvg-"+uuid.NewString()+".jsonl")
}

const payloadSrc = `// duosvg control payload. Generated per run; edits are discarded.

app.userInteractionLevel = UserInteractionLevel.DONTDISPLAYALERTS;

var INPUT_FOLDER = "{{js .InputFolder}}";
var OUTPUT_FOLDER = "{{js .OutputFolder}}";
var REPORT_PATH = "{{js .ReportPath}}";

var CFG = {
    colorFidelity: {{.ColorFidelity}},
    pathFitting: {{printf "%g" .PathFitting}},
    ignoreWhite: {{.IgnoreWhite}},
    sizeMode: "{{.SizeMode}}",
    targetWidth: {{.TargetWidth}},
    targetHeight: {{.TargetHeight}},
    scalePercent: {{printf "%g" .ScalePercent}}
};

var STEP = {
    create: "{{js .StepCreate}}",
    place: "{{js .StepPlace}}",
    resize: "{{js .StepResize}}",
    embed: "{{js .StepEmbed}}",
    trace: "{{js .StepTrace}}",
    expand: "{{js .StepExpand}}",
    background: "{{js .StepBackground}}",
    normalize: "{{js .StepNormalize}}",
    exportSvg: "{{js .StepExport}}"
};

var WHITE_CHANNEL_MIN = {{.WhiteChannelMin}};
var WHITE_GRAY_MIN = {{.WhiteGrayMin}};

var report = new File(REPORT_PATH);
report.encoding = "UTF-8";
report.open("w");

function jsonQuote(value) {
    var s = String(value);
    var out = '"';
    for (var i = 0; i < s.length; i++) {
        var c = s.charAt(i);
        if (c === '"' || c === '\\') {
            out += '\\' + c;
        } else if (c === '\n') {
            out += '\\n';
        } else if (c === '\r') {
            out += '\\r';
        } else if (c === '\t') {
            out += '\\t';
        } else {
            out += c;
        }
    }
    return out + '"';
}

function writeRecord(name, status, step, output, error) {
    report.writeln('{' +
        jsonQuote('file') + ':' + jsonQuote(name) + ',' +
        jsonQuote('status') + ':' + jsonQuote(status) + ',' +
        jsonQuote('step') + ':' + jsonQuote(step) + ',' +
        jsonQuote('output') + ':' + jsonQuote(output) + ',' +
        jsonQuote('error') + ':' + jsonQuote(error) + '}');
}

function applyTraceSettings(tracing) {
    var opts = tracing.tracingOptions;
    if (CFG.colorFidelity >= 0) {
        try { opts.colorFidelity = CFG.colorFidelity; } catch (e) {}
    }
    try { opts.pathFitting = CFG.pathFitting; } catch (e) {}
    try { opts.ignoreWhite = CFG.ignoreWhite; } catch (e) {}
}

function expandTraced(doc, traced) {
    try {
        traced.tracing.expandTracing();
        return;
    } catch (e) {}
    try {
        traced.expand();
        return;
    } catch (e) {}
    app.selection = null;
    traced.selected = true;
    app.executeMenuCommand('expand-tracing');
}

function nearWhiteFill(color) {
    if (color.typename === 'RGBColor') {
        return color.red > WHITE_CHANNEL_MIN &&
            color.green > WHITE_CHANNEL_MIN &&
            color.blue > WHITE_CHANNEL_MIN;
    }
    if (color.typename === 'GrayColor') {
        return color.gray > WHITE_GRAY_MIN;
    }
    return false;
}

function removeLargestWhiteShape(doc) {
    var best = null;
    var bestArea = 0;
    for (var i = 0; i < doc.pathItems.length; i++) {
        var item = doc.pathItems[i];
        if (!item.filled || !item.closed) {
            continue;
        }
        if (!nearWhiteFill(item.fillColor)) {
            continue;
        }
        var gb = item.geometricBounds;
        var area = (gb[2] - gb[0]) * (gb[1] - gb[3]);
        if (best === null || area > bestArea) {
            best = item;
            bestArea = area;
        }
    }
    if (best !== null) {
        best.remove();
    }
}

function unionBounds(doc) {
    var bounds = null;
    for (var i = 0; i < doc.pageItems.length; i++) {
        var gb = doc.pageItems[i].geometricBounds;
        if (bounds === null) {
            bounds = [gb[0], gb[1], gb[2], gb[3]];
        } else {
            if (gb[0] < bounds[0]) { bounds[0] = gb[0]; }
            if (gb[1] > bounds[1]) { bounds[1] = gb[1]; }
            if (gb[2] > bounds[2]) { bounds[2] = gb[2]; }
            if (gb[3] < bounds[3]) { bounds[3] = gb[3]; }
        }
    }
    return bounds;
}

function scaleAllItems(doc, percent) {
    for (var i = 0; i < doc.pageItems.length; i++) {
        doc.pageItems[i].resize(percent, percent,
            true, true, true, true, percent,
            Transformation.DOCUMENTORIGIN);
    }
}

function normalizeSize(doc) {
    if (CFG.sizeMode === 'scale') {
        scaleAllItems(doc, CFG.scalePercent);
        return;
    }
    if (CFG.sizeMode !== 'exact') {
        return;
    }
    var bounds = unionBounds(doc);
    if (bounds === null) {
        return;
    }
    var width = bounds[2] - bounds[0];
    var height = bounds[1] - bounds[3];
    if (width <= 0 || height <= 0) {
        return;
    }
    var scale = 1.0;
    if (CFG.targetWidth > 0 && CFG.targetHeight > 0) {
        scale = Math.min(CFG.targetWidth / width, CFG.targetHeight / height);
    } else if (CFG.targetWidth > 0) {
        scale = CFG.targetWidth / width;
    } else if (CFG.targetHeight > 0) {
        scale = CFG.targetHeight / height;
    }
    scaleAllItems(doc, scale * 100);
    var finalWidth = CFG.targetWidth > 0 ? CFG.targetWidth : width * scale;
    var finalHeight = CFG.targetHeight > 0 ? CFG.targetHeight : height * scale;
    doc.artboards[0].artboardRect = [0, finalHeight, finalWidth, 0];
}

function convertOne(file) {
    var name = decodeURI(file.name);
    var doc = null;
    var stepName = STEP.create;
    try {
        doc = app.documents.add(DocumentColorSpace.RGB);

        stepName = STEP.place;
        var placed = doc.placedItems.add();
        placed.file = file;

        stepName = STEP.resize;
        var width = placed.width;
        var height = placed.height;
        doc.artboards[0].artboardRect = [0, height, width, 0];
        placed.position = [0, height];

        stepName = STEP.embed;
        placed.embed();

        stepName = STEP.trace;
        var traced = doc.rasterItems[0].trace();
        applyTraceSettings(traced.tracing);
        app.redraw();

        stepName = STEP.expand;
        expandTraced(doc, traced);

        stepName = STEP.background;
        if (CFG.ignoreWhite) {
            try { removeLargestWhiteShape(doc); } catch (e) {}
        }

        stepName = STEP.normalize;
        try { normalizeSize(doc); } catch (e) {}

        stepName = STEP.exportSvg;
        var base = name.replace(/\.png$/i, '');
        var dest = new File(OUTPUT_FOLDER + '/' + base + '.svg');
        var svgOptions = new ExportOptionsSVG();
        svgOptions.embedRasterImages = false;
        svgOptions.coordinatePrecision = 3;
        doc.exportFile(dest, ExportType.SVG, svgOptions);

        writeRecord(name, '{{.StatusOK}}', '', base + '.svg', '');
    } catch (e) {
        writeRecord(name, '{{.StatusFailed}}', stepName, '', String(e));
    } finally {
        if (doc !== null) {
            try { doc.close(SaveOptions.DONOTSAVECHANGES); } catch (e) {}
        }
    }
}

function main() {
    var input = new Folder(INPUT_FOLDER);
    var files = input.getFiles(function (f) {
        return f instanceof File && /\.png$/i.test(f.name);
    });
    files.sort(function (a, b) {
        var an = decodeURI(a.name).toLowerCase();
        var bn = decodeURI(b.name).toLowerCase();
        if (an < bn) { return -1; }
        if (an > bn) { return 1; }
        return 0;
    });

    var out = new Folder(OUTPUT_FOLDER);
    if (!out.exists) {
        out.create();
    }

    for (var i = 0; i < files.length; i++) {
        convertOne(files[i]);
    }
}

try {
    main();
} finally {
    report.close();
    app.quit();
}
`
