package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fb-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List display backends",
	Long:  `Shows the display backends 'breakout play --display' accepts.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	backends := append(registry.List(), registry.BackendInfo{ID: "tui", Title: "Terminal preview"})

	fmt.Println("Available displays:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --display <id>' to play.")
}
