package style

import "github.com/osse101/garden-advisor/internal/domain"

// DashboardView is the information-dense analytical presentation
type DashboardView struct {
	ReportID     string           `json:"reportId"`
	GeneratedAt  string           `json:"generatedAt"`
	Archetype    string           `json:"archetype"`
	Summary      string           `json:"summary"`
	Panels       []DashboardPanel `json:"panels"`
	TagFrequency map[string]int   `json:"tagFrequency"`
	TotalPoints  int              `json:"totalPoints"`
	Verdict      string           `json:"verdict"`
	CallToAction string           `json:"callToAction"`
}

type DashboardPanel struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	PointCount int                  `json:"pointCount"`
	Points     []domain.AdvicePoint `json:"points"`
}

// RenderDashboard adapts a report into panels with aggregate tag counts
func RenderDashboard(r *domain.Report) DashboardView {
	panels := make([]DashboardPanel, 0, len(r.Sections))
	tags := make(map[string]int)
	total := 0

	for _, section := range r.Sections {
		panels = append(panels, DashboardPanel{
			ID:         section.ID,
			Title:      section.Title,
			PointCount: len(section.Points),
			Points:     section.Points,
		})
		total += len(section.Points)
		for _, point := range section.Points {
			for _, tag := range point.Tags {
				tags[tag]++
			}
		}
	}

	return DashboardView{
		ReportID:     r.ReportID,
		GeneratedAt:  r.PublicationDate,
		Archetype:    r.PlayerProfile.Archetype,
		Summary:      r.PlayerProfile.Summary,
		Panels:       panels,
		TagFrequency: tags,
		TotalPoints:  total,
		Verdict:      r.FooterAnalysis.Conclusion,
		CallToAction: r.FooterAnalysis.CallToAction,
	}
}
