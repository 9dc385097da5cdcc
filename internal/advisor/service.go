package advisor

import (
	"context"
	"time"

	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/logger"
	"github.com/osse101/garden-advisor/internal/metrics"
)

// Service generates deterministic strategy reports from analysis requests.
// Every method is safe for concurrent use; the service holds only the
// read-only catalog.
type Service interface {
	// Normalize validates a raw request and resolves its items against the
	// catalog. Returns a validation error for shape violations; unresolved
	// item ids degrade to placeholders instead of failing.
	Normalize(ctx context.Context, req domain.AnalysisRequest) (*domain.NormalizedRequest, error)

	// GenerateAdvice runs the full pipeline: normalize, analyze, classify,
	// evaluate rules, assemble. The only error it can return is a
	// validation error from normalization.
	GenerateAdvice(ctx context.Context, req domain.AnalysisRequest) (*domain.Report, error)

	// GenerateFromNormalized produces a report from an already-normalized
	// request. It cannot fail: normalization guarantees well-typed input,
	// and every stage past it is a pure function.
	GenerateFromNormalized(ctx context.Context, n *domain.NormalizedRequest) *domain.Report
}

type service struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewService creates an advice service backed by the given catalog
func NewService(cat *catalog.Catalog) Service {
	return &service{catalog: cat, now: time.Now}
}

func (s *service) GenerateAdvice(ctx context.Context, req domain.AnalysisRequest) (*domain.Report, error) {
	n, err := s.Normalize(ctx, req)
	if err != nil {
		return nil, err
	}
	report := s.GenerateFromNormalized(ctx, n)
	metrics.ReportsGenerated.WithLabelValues(string(n.Mode), metrics.SourceRuleEngine).Inc()
	return report, nil
}

func (s *service) GenerateFromNormalized(ctx context.Context, n *domain.NormalizedRequest) *domain.Report {
	if len(n.Items) == 0 {
		// Normalization rejects empty selections; reaching here is a bug.
		panic("advisor: normalized request has no items")
	}

	state := analyzePlayerState(n)
	archetype := classifyArchetype(state)

	rc := ruleContext{items: n.Items, state: state, mode: n.Mode, expert: n.Expert}
	immediate := evalRules(immediateRules, rc, maxImmediatePoints)
	strategic := evalRules(strategicRules, rc, 0)
	optimization := evalRules(optimizationRules, rc, 0)

	sections := adaptSections(rc, immediate, strategic, optimization)
	report := s.assembleReport(n, state, archetype, sections, bundleForMode(n.Mode))

	logger.FromContext(ctx).Info(LogMsgReportGenerated,
		"report_id", report.ReportID,
		"mode", string(n.Mode),
		"archetype", archetype,
		"sections", len(sections))

	return report
}
