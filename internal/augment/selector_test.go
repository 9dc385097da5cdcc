package augment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/metrics"
)

type stubSource struct {
	report *domain.Report
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Generate(ctx context.Context, n *domain.NormalizedRequest) (*domain.Report, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.report.Clone(), nil
}

func testEngine() advisor.Service {
	cat := catalog.New([]domain.CatalogItem{
		{ID: 1, Name: "carrot", DisplayName: "Carrot", Tier: domain.TierCommon},
		{ID: 2, Name: "strawberry", DisplayName: "Strawberry", Tier: domain.TierCommon, MultiHarvest: true},
	})
	return advisor.NewService(cat)
}

func normalizedRequest(t *testing.T, mode string) *domain.NormalizedRequest {
	t.Helper()
	n, err := testEngine().Normalize(context.Background(), domain.AnalysisRequest{
		SelectedItems:   map[string]float64{"1": 5, "2": 2},
		Gold:            300,
		InGameDate:      "Summer, Day 10",
		CurrentDate:     "2025-06-15",
		InteractionMode: mode,
	})
	require.NoError(t, err)
	return n
}

func validStubReport() *domain.Report {
	point := domain.AdvicePoint{Action: "Do the thing", Reasoning: "Because it pays off.", Tags: []string{"Tag"}}
	return &domain.Report{
		ReportID:        "STUB-1",
		PublicationDate: "2020-01-01",
		MainTitle:       "Stub Title",
		SubTitle:        "STUB SUBTITLE",
		VisualAnchor:    "S",
		PlayerProfile:   domain.PlayerProfile{Title: "Player Profile", Archetype: "Stub", Summary: "A stub summary."},
		MidBreakerQuote: "Quote.",
		Sections: []domain.ReportSection{
			{ID: domain.SectionImmediateActions, Title: "Priority Actions 🎯", Points: []domain.AdvicePoint{point}},
			{ID: domain.SectionStrategicPlanning, Title: "Strategic Planning 🗺️", Points: []domain.AdvicePoint{point}},
			{ID: domain.SectionOptimizationTips, Title: "Optimization Tips ✨", Points: []domain.AdvicePoint{point}},
		},
		FooterAnalysis: domain.FooterAnalysis{Title: "Strategic Assessment", Conclusion: "Done.", CallToAction: "Act."},
	}
}

func defaultOptions() Options {
	return Options{Timeout: time.Second, CacheSize: 8, CacheTTL: time.Minute}
}

func TestSelectorWithoutSourceServesEngineReport(t *testing.T) {
	selector := NewSelector(testEngine(), nil, defaultOptions())
	n := normalizedRequest(t, "advanced")

	report := selector.Generate(context.Background(), n)
	require.NotNil(t, report)
	assert.False(t, selector.AugmentationEnabled())
	assert.Len(t, report.Sections, 3)
	assert.Equal(t, "2025-06-15", report.PublicationDate)
}

func TestSelectorFallsBackOnSourceError(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	selector := NewSelector(testEngine(), src, defaultOptions())
	n := normalizedRequest(t, "advanced")

	report := selector.Generate(context.Background(), n)
	require.NotNil(t, report)

	// Fallback must be schema-identical to the deterministic path
	engineReport := testEngine().GenerateFromNormalized(context.Background(), n)
	require.Len(t, report.Sections, len(engineReport.Sections))
	assert.Equal(t, engineReport.PlayerProfile.Archetype, report.PlayerProfile.Archetype)
	assert.Equal(t, 1, src.calls)
}

func TestSelectorFallsBackOnTimeout(t *testing.T) {
	src := &stubSource{report: validStubReport(), delay: 200 * time.Millisecond}
	opts := defaultOptions()
	opts.Timeout = 10 * time.Millisecond
	selector := NewSelector(testEngine(), src, opts)
	n := normalizedRequest(t, "advanced")

	report := selector.Generate(context.Background(), n)
	require.NotNil(t, report)
	assert.NotEqual(t, "Stub Title", report.MainTitle)
}

func TestSelectorDiscardsMalformedReport(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Report)
	}{
		{"missing title", func(r *domain.Report) { r.MainTitle = "" }},
		{"no sections", func(r *domain.Report) { r.Sections = nil }},
		{"empty point", func(r *domain.Report) { r.Sections[0].Points[0].Action = "" }},
		{"missing archetype", func(r *domain.Report) { r.PlayerProfile.Archetype = "" }},
		{"section without points", func(r *domain.Report) { r.Sections[1].Points = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validStubReport()
			tt.mutate(bad)

			selector := NewSelector(testEngine(), &stubSource{report: bad}, defaultOptions())
			report := selector.Generate(context.Background(), normalizedRequest(t, "advanced"))
			require.NotNil(t, report)
			assert.NotEqual(t, "STUB-1", report.ReportID)
		})
	}
}

func TestSelectorServesValidAugmentedReport(t *testing.T) {
	src := &stubSource{report: validStubReport()}
	selector := NewSelector(testEngine(), src, defaultOptions())
	n := normalizedRequest(t, "advanced")

	report := selector.Generate(context.Background(), n)
	require.NotNil(t, report)
	assert.Equal(t, "Stub Title", report.MainTitle)
	assert.Equal(t, "2025-06-15", report.PublicationDate, "publication date is restamped from the request")
	assert.NoError(t, validateReport(report))
}

func TestSelectorCachesAugmentedReports(t *testing.T) {
	src := &stubSource{report: validStubReport()}
	selector := NewSelector(testEngine(), src, defaultOptions())
	n := normalizedRequest(t, "advanced")

	first := selector.Generate(context.Background(), n)
	second := selector.Generate(context.Background(), n)

	assert.Equal(t, 1, src.calls, "second request must hit the cache")
	assert.Equal(t, first.MainTitle, second.MainTitle)
	assert.NotEqual(t, first.ReportID, second.ReportID, "cached body is restamped with a fresh id")
}

func TestSelectorCountsOnlyServedSource(t *testing.T) {
	engineCounter := metrics.ReportsGenerated.WithLabelValues("advanced", metrics.SourceRuleEngine)
	geminiCounter := metrics.ReportsGenerated.WithLabelValues("advanced", metrics.SourceGemini)
	n := normalizedRequest(t, "advanced")

	// Augmented report served: only the external source counts
	engineBefore := testutil.ToFloat64(engineCounter)
	geminiBefore := testutil.ToFloat64(geminiCounter)
	selector := NewSelector(testEngine(), &stubSource{report: validStubReport()}, defaultOptions())
	selector.Generate(context.Background(), n)
	assert.Equal(t, engineBefore, testutil.ToFloat64(engineCounter), "engine counter must not move when augmentation serves")
	assert.Equal(t, geminiBefore+1, testutil.ToFloat64(geminiCounter))

	// Fallback served: only the rule engine counts
	engineBefore = testutil.ToFloat64(engineCounter)
	geminiBefore = testutil.ToFloat64(geminiCounter)
	selector = NewSelector(testEngine(), &stubSource{err: errors.New("boom")}, defaultOptions())
	selector.Generate(context.Background(), n)
	assert.Equal(t, engineBefore+1, testutil.ToFloat64(engineCounter))
	assert.Equal(t, geminiBefore, testutil.ToFloat64(geminiCounter), "fallback must not count as an augmented report")
}

func TestSelectorTrimsOverDeliveredSections(t *testing.T) {
	long := validStubReport()
	long.Sections = append(long.Sections, long.Sections[0], long.Sections[1])

	selector := NewSelector(testEngine(), &stubSource{report: long}, defaultOptions())
	report := selector.Generate(context.Background(), normalizedRequest(t, "beginner"))
	require.NotNil(t, report)
	assert.Len(t, report.Sections, 2)
}
