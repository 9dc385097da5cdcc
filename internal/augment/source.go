package augment

import (
	"context"

	"github.com/osse101/garden-advisor/internal/domain"
)

// Source produces a full report for a normalized request. Implementations
// must return a report that satisfies the same schema as the rule engine or
// an error; callers discard anything in between.
type Source interface {
	Name() string
	Generate(ctx context.Context, n *domain.NormalizedRequest) (*domain.Report, error)
}
