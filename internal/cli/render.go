package cli

import (
	"fmt"
	"sort"
	"strings"

	"palpite/internal/model"
)

// RenderResult formats a single classification result for the terminal.
func RenderResult(result model.ClassificationResult, needsReview bool) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render(result.Category))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  (%.0f%% via %s)", result.Confidence*100, result.Method)))
	b.WriteString("\n")

	if result.Votes > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  votes: %d/%d", result.Votes, result.TotalVotes)))
		b.WriteString("\n")
	}

	for _, alt := range result.Alternatives {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  alt: %s (score %d)", alt.Category, alt.Score)))
		b.WriteString("\n")
	}

	if needsReview {
		b.WriteString(FormatWarning("needs manual review"))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSuggestions formats a ranked suggestion list.
func RenderSuggestions(suggestions model.Suggestions) string {
	if len(suggestions) == 0 {
		return SubtleStyle.Render("no suggestions") + "\n"
	}

	var b strings.Builder
	for i, s := range suggestions {
		b.WriteString(fmt.Sprintf("%d. %s %s\n",
			i+1,
			BoldStyle.Render(s.Category),
			SubtleStyle.Render(fmt.Sprintf("(%.0f%% via %s)", s.Confidence*100, s.Source))))
	}
	return b.String()
}

// RenderStats formats aggregate categorization statistics.
func RenderStats(stats model.Stats) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Categorization stats"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("total: %d\n", stats.Total))
	b.WriteString(fmt.Sprintf("average confidence: %.2f\n", stats.AvgConfidence))
	b.WriteString(fmt.Sprintf("needs review: %d\n", stats.NeedsReview))

	methods := make([]string, 0, len(stats.ByMethod))
	for method := range stats.ByMethod {
		methods = append(methods, string(method))
	}
	sort.Strings(methods)
	for _, method := range methods {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s: %d", method, stats.ByMethod[model.Method(method)])))
		b.WriteString("\n")
	}

	return b.String()
}
