package style

import "github.com/osse101/garden-advisor/internal/domain"

// MinimalView strips the report to its action items
type MinimalView struct {
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Archetype   string        `json:"archetype"`
	KeyInsight  string        `json:"keyInsight"`
	ActionItems []MinimalItem `json:"actionItems"`
	NextStep    string        `json:"nextStep"`
}

type MinimalItem struct {
	Do  string `json:"do"`
	Why string `json:"why"`
}

// RenderMinimal flattens all sections into a single action list
func RenderMinimal(r *domain.Report) MinimalView {
	var items []MinimalItem
	for _, section := range r.Sections {
		for _, point := range section.Points {
			items = append(items, MinimalItem{Do: point.Action, Why: point.Reasoning})
		}
	}

	return MinimalView{
		Title:       r.MainTitle,
		Date:        r.PublicationDate,
		Archetype:   r.PlayerProfile.Archetype,
		KeyInsight:  r.PlayerProfile.Summary,
		ActionItems: items,
		NextStep:    r.FooterAnalysis.CallToAction,
	}
}
