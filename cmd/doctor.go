package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/duocalvin/duosvg/internal/illustrator"
	"github.com/duocalvin/duosvg/internal/tui"
)

var doctorApp string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this machine can run conversions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(os.Stdout)
	},
}

func runDoctor(w io.Writer) error {
	ready := true
	report := func(label, detail string, err error) {
		if err != nil {
			ready = false
			fmt.Fprintf(w, "%s %s: %v\n", doctorBadStyle.Render("✗"), label, err)
			return
		}
		if detail == "" {
			fmt.Fprintf(w, "%s %s\n", doctorOKStyle.Render("✓"), label)
			return
		}
		fmt.Fprintf(w, "%s %s: %s\n", doctorOKStyle.Render("✓"), label, doctorDimStyle.Render(detail))
	}

	report("macOS", "", illustrator.CheckPlatform())

	if doctorApp == "" {
		bundles := illustrator.ListBundles()
		if len(bundles) == 0 {
			report("Adobe Illustrator", "", illustrator.ErrAppNotFound)
		}
		for i, bundle := range bundles {
			detail := bundle
			if i == len(bundles)-1 && len(bundles) > 1 {
				detail += " (newest, used by default)"
			}
			report("Adobe Illustrator", detail, nil)
		}
	}

	app, err := illustrator.FindApp(doctorApp)
	switch {
	case err != nil && doctorApp != "":
		report("Adobe Illustrator", "", err)
	case err == nil:
		_, statErr := os.Stat(app.ExecPath)
		report("engine executable", app.ExecPath, statErr)
	}

	for _, tool := range []string{"ps", "open"} {
		path, lookErr := exec.LookPath(tool)
		report(tool+" available", path, lookErr)
	}

	tmp, tmpErr := os.CreateTemp("", "duosvg-doctor-*")
	if tmpErr == nil {
		tmp.Close()
		os.Remove(tmp.Name())
	}
	report("temp dir writable", os.TempDir(), tmpErr)

	if !ready {
		return errors.New("this machine is not ready to convert")
	}
	return nil
}

var (
	doctorOKStyle  = lipgloss.NewStyle().Foreground(tui.ColorSuccess)
	doctorBadStyle = lipgloss.NewStyle().Foreground(tui.ColorFail)
	doctorDimStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	doctorCmd.Flags().StringVar(&doctorApp, "app", "", "path to a specific Illustrator .app bundle")
	rootCmd.AddCommand(doctorCmd)
}
