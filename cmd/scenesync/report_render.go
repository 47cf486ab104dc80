package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scenesync/internal/align"
)

var labelCaser = cases.Title(language.English)

// renderReport formats an alignment report for terminal display.
func renderReport(report align.Report) string {
	rows := [][]string{
		{"Total scenes", fmt.Sprintf("%d", report.TotalScenes)},
		{"Fuzzy matched", fmt.Sprintf("%d", report.FuzzyMatched)},
		{"Interpolated", fmt.Sprintf("%d", report.Interpolated)},
		{"No narration", fmt.Sprintf("%d", report.NoNarration)},
		{"Unresolved", fmt.Sprintf("%d", report.Unresolved)},
		{"Average score", fmt.Sprintf("%.3f", report.AverageScore)},
		{"Low-confidence matches", fmt.Sprintf("%d", report.LowScoreCount)},
		{"Overlaps", fmt.Sprintf("%d", report.Overlaps)},
		{"Large gaps", fmt.Sprintf("%d", report.LargeGaps)},
		{"Total duration", fmt.Sprintf("%.2fs", report.TotalDuration)},
		{"Quality", qualityLabel(report.Quality)},
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
	for _, issue := range report.Issues {
		b.WriteString("\n  ! ")
		b.WriteString(issue)
	}
	return b.String()
}

func qualityLabel(q align.Quality) string {
	return labelCaser.String(strings.ReplaceAll(string(q), "_", " "))
}
