package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#2DA44E") // Green
	errorColor   = lipgloss.Color("#CF222E") // Red
	dimColor     = lipgloss.Color("#6E7681") // Gray

	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
)

// printSummary prints the per-date outcome and batch totals after a run
func printSummary(results []DateResult) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Import summary"))

	totalItems := 0
	totalWritten := 0
	failed := 0

	for _, r := range results {
		switch r.Status {
		case DateOK:
			line := fmt.Sprintf("  %s %s: %d items, %d files written",
				successStyle.Render("✓"), r.Date, r.Items, r.Written)
			if r.Skipped > 0 {
				line += dimStyle.Render(fmt.Sprintf(" (%d rows skipped)", r.Skipped))
			}
			fmt.Println(line)
			totalItems += r.Items
			totalWritten += r.Written
		default:
			fmt.Printf("  %s %s: %v\n", errorStyle.Render("✗"), r.Date, r.Err)
			failed++
		}
	}

	fmt.Printf("\nProcessed %d items across %d dates\n", totalItems, len(results))
	fmt.Printf("Created %d files\n", totalWritten)
	if failed > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%d dates failed", failed)))
	}
}
