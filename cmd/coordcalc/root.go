package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose   bool
	elemType  string
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "coordcalc",
	Short: "coordcalc - format, convert and combine coordinates",
	Long: `coordcalc works with 2D and 3D coordinates written in their canonical
text form, e.g. coord2(1.5,-2) or coord3(1,2,3).

It formats component values, evaluates 2D arithmetic, converts between
element types and runs batches of operations from a YAML file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureColor(colorMode)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&elemType, "type", "t", "float64", "Element type: "+supportedTypes)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configureColor sets the global color switch from the --color flag.
// "auto" enables color only when stdout is a TTY and NO_COLOR is unset.
func configureColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	}
}
