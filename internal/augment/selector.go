package augment

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/logger"
	"github.com/osse101/garden-advisor/internal/metrics"
)

// Options tune the selector's augmentation behavior
type Options struct {
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// Selector is the single report source the transport layer talks to. It
// always produces the deterministic rule engine report first; an external
// source may then substitute richer content, but only if the substitute
// passes the same structural contract. Any failure is recovered silently.
type Selector struct {
	engine  advisor.Service
	source  Source
	timeout time.Duration
	cache   *reportCache
}

// NewSelector wires the rule engine with an optional external source.
// A nil source disables augmentation entirely.
func NewSelector(engine advisor.Service, source Source, opts Options) *Selector {
	return &Selector{
		engine:  engine,
		source:  source,
		timeout: opts.Timeout,
		cache:   newReportCache(opts.CacheSize, opts.CacheTTL),
	}
}

// AugmentationEnabled reports whether an external source is configured
func (s *Selector) AugmentationEnabled() bool {
	return s.source != nil
}

// SourceName returns the configured source's name, or empty when disabled
func (s *Selector) SourceName() string {
	if s.source == nil {
		return ""
	}
	return s.source.Name()
}

// Generate produces a report for a normalized request. It never fails: the
// rule engine report is the floor, augmentation only ever improves on it.
func (s *Selector) Generate(ctx context.Context, n *domain.NormalizedRequest) *domain.Report {
	base := s.engine.GenerateFromNormalized(ctx, n)
	if s.source == nil {
		return s.serveBase(n, base)
	}

	log := logger.FromContext(ctx)

	key := fingerprint(n)
	if cached, ok := s.cache.Get(key); ok {
		metrics.AugmentationCacheHits.Inc()
		metrics.ReportsGenerated.WithLabelValues(string(n.Mode), metrics.SourceGemini).Inc()
		// Restamp so a cached body still reads as a fresh report
		cached.ReportID = base.ReportID
		cached.PublicationDate = base.PublicationDate
		log.Info(LogMsgAugmentCacheHit, "report_id", cached.ReportID)
		return cached
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report, err := s.source.Generate(callCtx, n)
	if err != nil {
		reason := fallbackReason(callCtx, err)
		metrics.AugmentationFallbacks.WithLabelValues(reason).Inc()
		log.Warn(LogMsgAugmentFallback, "source", s.source.Name(), "reason", reason, "error", err)
		return s.serveBase(n, base)
	}
	if err := validateReport(report); err != nil {
		metrics.AugmentationFallbacks.WithLabelValues(ReasonMalformedReport).Inc()
		log.Warn(LogMsgAugmentFallback, "source", s.source.Name(), "reason", ReasonMalformedReport, "error", err)
		return s.serveBase(n, base)
	}

	conformToMode(report, n.Mode)
	if report.ReportID == "" {
		report.ReportID = base.ReportID
	}
	report.PublicationDate = base.PublicationDate

	s.cache.Set(key, report)
	metrics.ReportsGenerated.WithLabelValues(string(n.Mode), metrics.SourceGemini).Inc()
	log.Info(LogMsgAugmentServed, "source", s.source.Name(), "report_id", report.ReportID)
	return report
}

// serveBase counts the rule engine report as the served one. The per-source
// counter tracks what callers receive, so exactly one source increments per
// request.
func (s *Selector) serveBase(n *domain.NormalizedRequest, base *domain.Report) *domain.Report {
	metrics.ReportsGenerated.WithLabelValues(string(n.Mode), metrics.SourceRuleEngine).Inc()
	return base
}

func fallbackReason(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, domain.ErrMalformedReport):
		return ReasonMalformedReport
	default:
		return ReasonGenerateFailed
	}
}
