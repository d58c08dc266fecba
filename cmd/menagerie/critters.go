package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/menagerie/internal/registry"
)

var crittersCmd = &cobra.Command{
	Use:   "critters",
	Short: "List the critter kinds",
	Long:  `Shows every critter kind that can be placed under critters: in the config.`,
	Args:  cobra.NoArgs,
	Run:   runCritters,
}

func runCritters(_ *cobra.Command, _ []string) {
	kinds := registry.List()

	if len(kinds) == 0 {
		fmt.Println("No critters available.")
		return
	}

	fmt.Println("Critter kinds:")
	fmt.Println()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, k := range kinds {
		if len(k.Kind) > maxKindLen {
			maxKindLen = len(k.Kind)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----------")

	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxKindLen, k.Kind, k.Description)
	}

	fmt.Println()
	fmt.Println("The cannon and cannonballs are placed by the game itself.")
}
