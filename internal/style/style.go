// Package style renders a report into presentation view models. Adapters are
// pure functions over the report; they never mutate it or feed anything back
// into generation.
package style

import (
	"strings"

	"github.com/osse101/garden-advisor/internal/domain"
)

// Style identifies a report presentation
type Style string

const (
	StyleMagazine  Style = "magazine"
	StyleMinimal   Style = "minimal"
	StyleDashboard Style = "dashboard"
)

// DefaultStyle is used when no style is requested
const DefaultStyle = StyleMagazine

// Parse maps a raw style name to a known style
func Parse(raw string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(raw))) {
	case StyleMagazine:
		return StyleMagazine, true
	case StyleMinimal:
		return StyleMinimal, true
	case StyleDashboard:
		return StyleDashboard, true
	case "":
		return DefaultStyle, true
	default:
		return "", false
	}
}

// Names lists the recognized style names
func Names() []string {
	return []string{string(StyleMagazine), string(StyleMinimal), string(StyleDashboard)}
}

// Render adapts a report for the given style
func Render(s Style, r *domain.Report) any {
	switch s {
	case StyleMinimal:
		return RenderMinimal(r)
	case StyleDashboard:
		return RenderDashboard(r)
	default:
		return RenderMagazine(r)
	}
}

// wordsPerMinute drives the read time estimate shown by the magazine view
const wordsPerMinute = 200

func estimateReadMinutes(r *domain.Report) int {
	words := countWords(r.PlayerProfile.Summary) + countWords(r.MidBreakerQuote) +
		countWords(r.FooterAnalysis.Conclusion) + countWords(r.FooterAnalysis.CallToAction)
	for _, section := range r.Sections {
		for _, point := range section.Points {
			words += countWords(point.Action) + countWords(point.Reasoning)
		}
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
