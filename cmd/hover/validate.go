package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-hover/hover/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a widget configuration file",
	RunE:  runValidate,
}

var validatePath string

func init() {
	validateCmd.Flags().StringVarP(&validatePath, "config", "c", "hover.yaml", "configuration file to validate")
}

func runValidate(cmd *cobra.Command, args []string) error {
	store := config.NewFileStore(validatePath)
	snap, found, err := store.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", validatePath, err)
	}
	if !found {
		return fmt.Errorf("%s: no such file", validatePath)
	}

	fmt.Printf("%s: OK\n", validatePath)
	fmt.Printf("  size: %.0fpx %s", snap.Size, snap.Shape)
	if snap.Draggable {
		fmt.Printf(", draggable")
	}
	fmt.Println()
	if snap.Zone.Enabled {
		fmt.Printf("  dismiss zone: %s, height %.0fpx, trigger %s, behavior %s\n",
			snap.Zone.Position, snap.Zone.Height, snap.Zone.Trigger, snap.Zone.Behavior)
	}
	if snap.Animations.SnapToEdge {
		fmt.Printf("  edge snap: %s over %s\n", snap.Animations.Interpolator, snap.Animations.SnapDuration)
	}
	if snap.Badge != nil {
		fmt.Printf("  badge: %q at %s\n", snap.Badge.Label, snap.Badge.Position)
	}
	return nil
}
