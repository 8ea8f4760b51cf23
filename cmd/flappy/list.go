package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can be played with.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play <id>' to play.")
}
