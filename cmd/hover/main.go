package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hover",
	Short: "Hover - persistent overlay widget engine",
	Long: `Hover drives a draggable overlay widget: gesture recognition,
position constraints, dismiss zones, edge snapping and visibility
coordination. The hover CLI validates widget configuration files and
runs the engine headlessly against a console surface for inspection.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
