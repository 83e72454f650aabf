package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows the available 2048 variants and their rules.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	maxNameLen := len("Name")
	for _, p := range t2048.Presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxNameLen, "Name", "Title", "Fours")
	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxNameLen, "----", "-----", "-----")
	for _, p := range t2048.Presets {
		marker := ""
		if p.Name == appConfig.Variant {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-*s  %-12s  %3.0f%%%s\n", maxNameLen, p.Name, p.Title, p.Spawn4*100, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tui2048 play <name>' to play a variant.")
}
