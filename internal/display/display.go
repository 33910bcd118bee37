// Package display renders project listings and resolution results for the
// terminal.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/callie/launchpad/internal/project"
)

// FormatProjectTable formats project records as aligned table rows.
// The first returned row is the header, the second a separator.
func FormatProjectTable(records []project.Record, colorOutput bool) []string {
	if len(records) == 0 {
		return []string{"No projects found"}
	}

	// Calculate column widths
	widths := map[string]int{
		"name":     4, // "Name"
		"modified": 8, // "Modified"
		"path":     4, // "Path"
	}

	for _, r := range records {
		if len(r.Name) > widths["name"] {
			widths["name"] = len(r.Name)
		}
		if age := formatAge(r.ModifiedAt); len(age) > widths["modified"] {
			widths["modified"] = len(age)
		}
	}

	header := fmt.Sprintf("%-*s  %-*s  %s",
		widths["name"], "Name",
		widths["modified"], "Modified",
		"Path")

	rows := []string{header, strings.Repeat("-", len(header))}

	for i, r := range records {
		row := fmt.Sprintf("%-*s  %-*s  %s",
			widths["name"], r.Name,
			widths["modified"], formatAge(r.ModifiedAt),
			r.Path)

		if colorOutput && i == 0 {
			// Highlight the most recent project
			row = color.GreenString(row)
		}

		rows = append(rows, row)
	}

	return rows
}

// FormatMatches formats ranked fuzzy matches, best first, with their scores.
func FormatMatches(matches []project.Scored, colorOutput bool) []string {
	if len(matches) == 0 {
		return []string{"No matches found"}
	}

	rows := make([]string, 0, len(matches))
	for i, m := range matches {
		row := fmt.Sprintf("%.2f  %s", m.Score, m.Record.Name)
		if colorOutput {
			if i == 0 {
				row = color.GreenString(row)
			} else {
				row = color.New(color.FgHiBlack).Sprint(row)
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// NavigationBar returns the pagination footer line.
// Format: "Page X of Y (N projects)".
func NavigationBar(currentPage, totalPages, totalItems int, colorOutput bool) string {
	noun := "projects"
	if totalItems == 1 {
		noun = "project"
	}

	nav := fmt.Sprintf("Page %d of %d (%d %s)", currentPage, totalPages, totalItems, noun)
	if colorOutput {
		nav = color.CyanString(nav)
	}
	return nav
}

// formatAge formats how long ago a timestamp was, in the largest sensible
// unit.
func formatAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
