package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duocalvin/duosvg/internal/convert"
	"github.com/duocalvin/duosvg/internal/trace"
	"github.com/duocalvin/duosvg/internal/tui"
)

var (
	convertColors       int
	convertColorsPct    int
	convertPaths        int
	convertTransparent  bool
	convertScale        float64
	convertOutW         int
	convertOutH         int
	convertOutput       string
	convertOpen         bool
	convertDryRun       bool
	convertApp          string
	convertStartTimeout time.Duration
	convertPlain        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <folder>",
	Short: "Trace every PNG in a folder into SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convert.Options{
			InputFolder: args[0],
			Trace: trace.Options{
				ColorCount:            convertColors,
				ColorFidelityPct:      convertColorsPct,
				PathDetailPct:         convertPaths,
				TransparentBackground: convertTransparent,
				OutputScale:           convertScale,
				OutputWidthPx:         convertOutW,
				OutputHeightPx:        convertOutH,
			},
			OutputFolder: convertOutput,
			AppOverride:  convertApp,
			StartTimeout: convertStartTimeout,
			DryRun:       convertDryRun,
			OpenWhenDone: convertOpen,
		}

		interactive := !convertPlain && term.IsTerminal(int(os.Stdout.Fd()))

		var res convert.Result
		var err error
		if interactive {
			res, err = runWithTUI(opts)
		} else {
			res, err = runWithBar(opts)
		}
		if err != nil {
			return err
		}

		printSummary(res)
		return nil
	},
}

func runWithTUI(opts convert.Options) (convert.Result, error) {
	updates := make(chan convert.Update, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	res, err := convert.Run(context.Background(), opts, updates)
	close(updates)
	<-uiDone
	return res, err
}

func runWithBar(opts convert.Options) (convert.Result, error) {
	updates := make(chan convert.Update, 64)

	barDone := make(chan struct{})
	go func() {
		defer close(barDone)
		var bar *progressbar.ProgressBar
		for u := range updates {
			if u.Stage != convert.StageTracing || u.Total == 0 {
				continue
			}
			if bar == nil {
				bar = progressbar.NewOptions(u.Total,
					progressbar.OptionSetDescription("tracing"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(u.Done)
		}
		if bar != nil {
			_ = bar.Finish()
		}
	}()

	res, err := convert.Run(context.Background(), opts, updates)
	close(updates)
	<-barDone
	return res, err
}

func printSummary(res convert.Result) {
	b := res.Batch
	rows := []tui.SummaryRow{
		{Label: "Images found", Value: fmt.Sprintf("%d", b.Total)},
		{Label: "Converted", Value: fmt.Sprintf("%d", b.SucceededCount())},
		{Label: "Failed", Value: fmt.Sprintf("%d", b.FailedCount())},
		{Label: "Warnings", Value: fmt.Sprintf("%d", len(res.Findings))},
		{Label: "Elapsed", Value: res.Duration.Round(time.Millisecond).String()},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

	if failures := tui.RenderFailures(b.Results); failures != "" {
		fmt.Fprintln(os.Stdout, failures)
	}
	if findings := tui.RenderFindings(res.Findings); findings != "" {
		fmt.Fprintln(os.Stdout, findings)
	}

	if res.DryRun {
		fmt.Fprintln(os.Stdout, "Dry run: Illustrator was not launched and nothing was written.")
		return
	}
	fmt.Fprintf(os.Stdout, "Vectors written to: %s\n", res.OutputFolder)
}

func init() {
	defs := trace.Defaults()
	convertCmd.Flags().IntVarP(&convertColors, "colors", "c", 0, "palette size for tracing, 2-30")
	convertCmd.Flags().IntVar(&convertColorsPct, "colors-pct", defs.ColorFidelityPct, "color fidelity percent, 0-100; overrides --colors")
	convertCmd.Flags().IntVarP(&convertPaths, "paths", "p", defs.PathDetailPct, "path detail percent, 1-100")
	convertCmd.Flags().BoolVarP(&convertTransparent, "transparent", "t", defs.TransparentBackground, "drop the traced white page background")
	convertCmd.Flags().Float64Var(&convertScale, "scale", defs.OutputScale, "uniform output scale factor")
	convertCmd.Flags().IntVar(&convertOutW, "out-w", 0, "exact output width in pixels")
	convertCmd.Flags().IntVar(&convertOutH, "out-h", 0, "exact output height in pixels")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "move the results folder here when done")
	convertCmd.Flags().BoolVar(&convertOpen, "open", false, "reveal the results folder when done")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "plan the batch without launching Illustrator")
	convertCmd.Flags().StringVar(&convertApp, "app", "", "path to a specific Illustrator .app bundle")
	convertCmd.Flags().DurationVar(&convertStartTimeout, "start-timeout", 30*time.Second, "how long to wait for Illustrator to come up")
	convertCmd.Flags().BoolVar(&convertPlain, "plain", false, "line-based progress instead of the full-screen view")

	rootCmd.AddCommand(convertCmd)
}
