package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/garden-advisor/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		ReportID:        "GGSB-1-abcd",
		PublicationDate: "2025-06-15",
		MainTitle:       "Garden Strategy Report",
		SubTitle:        "BALANCED GROWTH APPROACH",
		VisualAnchor:    "🎯",
		PlayerProfile: domain.PlayerProfile{
			Title: "Player Profile", Archetype: "Garden Strategist", Summary: "A summary.",
		},
		MidBreakerQuote: "A quote.",
		Sections: []domain.ReportSection{
			{
				ID: domain.SectionImmediateActions, Title: "Priority Actions 🎯",
				Points: []domain.AdvicePoint{
					{Action: "Focus on Carrot", Reasoning: "You have 5 units.", Tags: []string{"High Priority"}},
					{Action: "Focus on efficiency", Reasoning: "With 50 gold.", Tags: []string{"Efficiency", "High Priority"}},
				},
			},
			{
				ID: domain.SectionStrategicPlanning, Title: "Strategic Planning 🗺️",
				Points: []domain.AdvicePoint{
					{Action: "Optimize synergies", Reasoning: "Combos.", Tags: []string{"Synergy"}, Synergy: []string{"Carrot", "Corn"}},
				},
			},
		},
		FooterAnalysis: domain.FooterAnalysis{
			Title: "Strategic Assessment", Conclusion: "Keep going.", CallToAction: "Act now.",
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		expected Style
		ok       bool
	}{
		{"magazine", StyleMagazine, true},
		{"MINIMAL", StyleMinimal, true},
		{" dashboard ", StyleDashboard, true},
		{"", DefaultStyle, true},
		{"brutalist", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.expected, got, tt.raw)
	}
}

func TestRenderMagazine(t *testing.T) {
	report := sampleReport()
	view := RenderMagazine(report)

	assert.Equal(t, report.MainTitle, view.Cover.MainTitle)
	assert.Equal(t, report.ReportID, view.Cover.Issue)
	assert.Equal(t, report.MidBreakerQuote, view.PullQuote)
	require.Len(t, view.Spreads, 2)
	assert.Equal(t, "Priority Actions 🎯", view.Spreads[0].Heading)
	require.Len(t, view.Spreads[0].Entries, 2)
	assert.Equal(t, "Focus on Carrot", view.Spreads[0].Entries[0].Headline)
	assert.Equal(t, []string{"Carrot", "Corn"}, view.Spreads[1].Entries[0].Synergy)
	assert.GreaterOrEqual(t, view.ReadMinutes, 1)
}

func TestRenderMinimalFlattensSections(t *testing.T) {
	view := RenderMinimal(sampleReport())

	require.Len(t, view.ActionItems, 3)
	assert.Equal(t, "Focus on Carrot", view.ActionItems[0].Do)
	assert.Equal(t, "Optimize synergies", view.ActionItems[2].Do)
	assert.Equal(t, "Garden Strategist", view.Archetype)
	assert.Equal(t, "Act now.", view.NextStep)
}

func TestRenderDashboardAggregatesTags(t *testing.T) {
	view := RenderDashboard(sampleReport())

	require.Len(t, view.Panels, 2)
	assert.Equal(t, domain.SectionImmediateActions, view.Panels[0].ID)
	assert.Equal(t, 2, view.Panels[0].PointCount)
	assert.Equal(t, 3, view.TotalPoints)
	assert.Equal(t, 2, view.TagFrequency["High Priority"])
	assert.Equal(t, 1, view.TagFrequency["Synergy"])
}

func TestAdaptersDoNotMutateReport(t *testing.T) {
	report := sampleReport()
	original := report.Clone()

	RenderMagazine(report)
	RenderMinimal(report)
	RenderDashboard(report)

	assert.Equal(t, original, report)
}
