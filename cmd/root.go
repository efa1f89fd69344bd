package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/duocalvin/duosvg/internal/logger"
)

var (
	rootVerbose bool
	rootLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "duosvg",
	Short: "duosvg ✒ - batch-trace PNG folders into SVG with Adobe Illustrator",
	Long: "duosvg ✒ drives Adobe Illustrator to trace whole folders of PNG images\n" +
		"into SVG vectors, with tunable color and path fidelity.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logger.LevelInfo
		if rootVerbose {
			level = logger.LevelDebug
		}
		var sink io.Writer
		if rootLogFile != "" {
			f, err := os.OpenFile(rootLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("cannot open log file %s: %w", rootLogFile, err)
			}
			sink = f
		}
		logger.Init(level, sink)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "append JSONL logs to this file")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
