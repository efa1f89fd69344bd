package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/duocalvin/duosvg/internal/apperrors"
	"github.com/duocalvin/duosvg/internal/engine"
	"github.com/duocalvin/duosvg/internal/illustrator"
	"github.com/duocalvin/duosvg/internal/logger"
	"github.com/duocalvin/duosvg/internal/supervise"
	"github.com/duocalvin/duosvg/internal/trace"
)

// Options configures one conversion run.
type Options struct {
	// InputFolder holds the PNGs to convert.
	InputFolder string
	// OutputFolder, when set, receives the results folder after the
	// run. Empty leaves the results next to the inputs.
	OutputFolder string
	// Trace carries the raw conversion settings.
	Trace trace.Options
	// AppOverride points at a specific Illustrator bundle instead of
	// the newest installed one.
	AppOverride string
	// StartTimeout bounds the wait for the engine to come up. Zero
	// picks the supervisor default.
	StartTimeout time.Duration
	// DryRun plans the batch in-process without launching the engine.
	DryRun bool
	// OpenWhenDone reveals the results folder afterwards.
	OpenWhenDone bool
}

// Stage marks the coarse phases a run moves through.
type Stage int

const (
	StageDiscover Stage = iota
	StagePreflight
	StageLaunch
	StageTracing
	StageCollect
)

func (s Stage) String() string {
	switch s {
	case StageDiscover:
		return "discovering images"
	case StagePreflight:
		return "preflight"
	case StageLaunch:
		return "starting Illustrator"
	case StageTracing:
		return "tracing"
	case StageCollect:
		return "collecting results"
	}
	return "working"
}

// Update is one progress event. Done, Failed, and Total describe the
// batch while Stage is StageTracing; Image names the most recently
// finished file.
type Update struct {
	Stage  Stage
	Image  string
	Done   int
	Failed int
	Total  int
}

// Result is everything a run produced.
type Result struct {
	Batch        engine.BatchResult
	Findings     []Finding
	OutputFolder string
	DryRun       bool
	Duration     time.Duration
}

// Run converts every PNG in the input folder. Progress lands on updates
// when it is non-nil; the caller owns and closes that channel. The
// returned error covers run-level failures only: per-image failures are
// isolated inside Result.Batch.
func Run(ctx context.Context, opts Options, updates chan<- Update) (Result, error) {
	begin := time.Now()
	res := Result{DryRun: opts.DryRun}

	if err := opts.Trace.Validate(); err != nil {
		return res, err
	}
	cfg := trace.Translate(opts.Trace)

	inputDir, err := filepath.Abs(opts.InputFolder)
	if err != nil {
		return res, apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("cannot resolve input folder %s", opts.InputFolder), err)
	}

	send(updates, Update{Stage: StageDiscover})
	images, err := DiscoverImages(inputDir)
	if err != nil {
		return res, err
	}
	if len(images) == 0 {
		return res, apperrors.Validation(fmt.Sprintf("no .png files in %s", inputDir))
	}
	logger.Info("discovered input images", "folder", inputDir, "count", len(images))

	send(updates, Update{Stage: StagePreflight, Total: len(images)})
	res.Findings = Inspect(images)
	for _, f := range res.Findings {
		logger.Warn("preflight", "file", f.File, "note", f.Message)
	}

	outDir := filepath.Join(inputDir, engine.OutputFolderName)

	if opts.DryRun {
		return runDry(res, images, cfg, outDir, updates, begin)
	}
	return runEngine(ctx, opts, res, images, cfg, inputDir, outDir, updates, begin)
}

// runDry pushes the batch through the in-process planning binding. The
// output folder is created just as a real run would create it, but no
// files are written; a folder left empty is removed again on the way
// out.
func runDry(res Result, images []engine.InputImage, cfg trace.Config, outDir string, updates chan<- Update, begin time.Time) (Result, error) {
	done, failed := 0, 0
	batch, err := engine.RunBatch(images, cfg, planBinding{}, outDir, func(r engine.ConversionResult) {
		done++
		if r.Status == engine.Failed {
			failed++
		}
		send(updates, Update{Stage: StageTracing, Image: r.Input.Name, Done: done, Failed: failed, Total: len(images)})
	})
	if err != nil {
		return res, err
	}
	os.Remove(outDir)

	res.Batch = batch
	res.OutputFolder = outDir
	res.Duration = time.Since(begin)
	return res, nil
}

func runEngine(ctx context.Context, opts Options, res Result, images []engine.InputImage, cfg trace.Config, inputDir, outDir string, updates chan<- Update, begin time.Time) (Result, error) {
	if err := illustrator.CheckPlatform(); err != nil {
		return res, apperrors.New(apperrors.KindValidation, err.Error(), err)
	}

	app, err := illustrator.FindApp(opts.AppOverride)
	if err != nil {
		return res, apperrors.New(apperrors.KindValidation, "Illustrator is not installed or the given bundle path is wrong", err)
	}
	logger.Info("using engine", "bundle", app.BundlePath)

	reportPath := illustrator.TempReportPath()
	scriptPath, err := illustrator.WriteScript(illustrator.Params{
		InputFolder:  inputDir,
		OutputFolder: outDir,
		ReportPath:   reportPath,
		Config:       cfg,
	})
	if err != nil {
		return res, apperrors.New(apperrors.KindInternal, "could not prepare the control script", err)
	}
	defer os.Remove(scriptPath)
	defer os.Remove(reportPath)
	logger.Debug("control script written", "script", scriptPath, "report", reportPath)

	total := len(images)
	progress := func(alive bool) {
		lines, err := illustrator.ParseReport(reportPath)
		if err != nil || len(lines) == 0 {
			return
		}
		u := Update{Stage: StageTracing, Total: total, Done: len(lines)}
		for _, line := range lines {
			if line.Status == illustrator.StatusFailed {
				u.Failed++
			}
		}
		u.Image = lines[len(lines)-1].File
		send(updates, u)
	}

	sup := supervise.New(
		func() error { return app.Launch(scriptPath) },
		illustrator.NewProcessProbe(app.ExecPath),
		supervise.Config{StartTimeout: opts.StartTimeout, OnSample: progress},
	)

	send(updates, Update{Stage: StageLaunch, Total: total})
	if err := sup.Start(ctx); err != nil {
		if errors.Is(err, supervise.ErrStartTimeout) {
			return res, apperrors.New(apperrors.KindEngine,
				fmt.Sprintf("%s did not start; open it once manually and check licensing", app.Name()), err)
		}
		return res, apperrors.Engine("could not launch the engine", err)
	}
	logger.Info("engine running", "name", app.Name())

	send(updates, Update{Stage: StageTracing, Total: total})
	if err := sup.WaitStopped(ctx); err != nil {
		return res, apperrors.Engine("lost track of the engine", err)
	}
	logger.Info("engine exited")

	send(updates, Update{Stage: StageCollect, Total: total})
	if _, err := os.Stat(outDir); err != nil {
		return res, apperrors.New(apperrors.KindEngine,
			fmt.Sprintf("the engine did not produce a %s folder; it may have quit before tracing", engine.OutputFolderName), err)
	}

	lines, err := illustrator.ParseReport(reportPath)
	if err != nil {
		logger.Warn("run report unreadable, falling back to exported files", "error", err)
	}
	res.Batch = assembleBatch(images, lines, outDir)
	res.OutputFolder = outDir

	if opts.OutputFolder != "" {
		destRoot, err := filepath.Abs(opts.OutputFolder)
		if err != nil {
			return res, apperrors.New(apperrors.KindValidation,
				fmt.Sprintf("cannot resolve output folder %s", opts.OutputFolder), err)
		}
		dest := filepath.Join(destRoot, engine.OutputFolderName)
		if dest != outDir {
			if err := RelocateResults(outDir, dest); err != nil {
				return res, apperrors.New(apperrors.KindInternal, "could not move results into the output folder", err)
			}
			rehomeResults(&res.Batch, outDir, dest)
			res.OutputFolder = dest
		}
	}

	if opts.OpenWhenDone {
		if err := Reveal(res.OutputFolder); err != nil {
			logger.Warn("could not open results folder", "error", err)
		}
	}

	res.Duration = time.Since(begin)
	return res, nil
}

// rehomeResults repoints per-image output paths after relocation.
func rehomeResults(batch *engine.BatchResult, oldDir, newDir string) {
	batch.OutputFolder = newDir
	for i := range batch.Results {
		r := &batch.Results[i]
		if r.OutputPath == "" {
			continue
		}
		if rel, err := filepath.Rel(oldDir, r.OutputPath); err == nil {
			r.OutputPath = filepath.Join(newDir, rel)
		}
	}
}

func send(updates chan<- Update, u Update) {
	if updates != nil {
		updates <- u
	}
}
