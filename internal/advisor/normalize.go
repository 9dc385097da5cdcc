package advisor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/logger"
	"github.com/osse101/garden-advisor/internal/metrics"
)

func (s *service) Normalize(ctx context.Context, req domain.AnalysisRequest) (*domain.NormalizedRequest, error) {
	n, err := s.normalize(ctx, req)
	if err != nil {
		metrics.ValidationRejections.WithLabelValues(rejectionReason(err)).Inc()
		logger.FromContext(ctx).Warn(LogMsgRequestRejected, "error", err)
		return nil, err
	}
	return n, nil
}

func (s *service) normalize(ctx context.Context, req domain.AnalysisRequest) (*domain.NormalizedRequest, error) {
	if len(req.SelectedItems) == 0 {
		return nil, domain.ErrEmptySelection
	}
	if math.IsNaN(req.Gold) || math.IsInf(req.Gold, 0) || req.Gold < 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidGold, req.Gold)
	}
	if !domain.InGameDatePattern.MatchString(req.InGameDate) {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidDate, req.InGameDate)
	}
	if strings.TrimSpace(req.CurrentDate) == "" {
		return nil, domain.ErrMissingCurrentDate
	}

	keys := canonicalKeys(req.SelectedItems)
	items := make([]domain.DetailedItem, 0, len(keys))
	for _, key := range keys {
		quantity := req.SelectedItems[key]
		// The upper bound keeps the int conversion below from overflowing
		if quantity <= 0 || quantity != math.Trunc(quantity) || math.IsInf(quantity, 0) || quantity > maxItemQuantity {
			return nil, fmt.Errorf("%w: item %q has quantity %v", domain.ErrInvalidQuantity, key, quantity)
		}
		items = append(items, s.resolveItem(ctx, key, int(quantity)))
	}

	mode := domain.ParseInteractionMode(req.InteractionMode)

	// Expert options only matter in expert mode; dropping them elsewhere
	// keeps the rule tables from ever seeing a half-applied bias.
	var expert *domain.ExpertOptions
	if mode == domain.ModeExpert {
		expert = req.ExpertOptions
	}

	return &domain.NormalizedRequest{
		Items:       items,
		Gold:        req.Gold,
		InGameDate:  req.InGameDate,
		CurrentDate: req.CurrentDate,
		Mode:        mode,
		Expert:      expert,
	}, nil
}

// resolveItem looks up a selection key in the catalog and builds the detailed
// item the rule engine reasons over. Unresolved keys degrade to a placeholder
// rather than failing the request.
func (s *service) resolveItem(ctx context.Context, key string, quantity int) domain.DetailedItem {
	item, ok := s.catalog.ResolveKey(key)
	if !ok {
		metrics.CatalogUnresolvedItems.Inc()
		logger.FromContext(ctx).Warn(LogMsgUnresolvedItem, "item_key", key)
		return domain.DetailedItem{
			Name:       domain.PlaceholderName(key),
			Quantity:   quantity,
			Properties: []string{},
		}
	}

	properties := []string{}
	if item.MultiHarvest {
		properties = append(properties, domain.PropertyMultiHarvest)
	}
	if item.DisplayName == domain.DecorationItemName {
		properties = append(properties, domain.PropertyNonSellable, domain.PropertyDecoration)
	}

	return domain.DetailedItem{
		Name:       item.DisplayName,
		Quantity:   quantity,
		Properties: properties,
	}
}

// canonicalKeys orders selection keys deterministically: numeric ids
// ascending first, then non-numeric keys lexically. Map iteration order must
// never leak into report content.
func canonicalKeys(selected map[string]float64) []string {
	keys := make([]string, 0, len(selected))
	for key := range selected {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// rejectionReason maps a validation error to its metric label
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptySelection):
		return "empty_selection"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrInvalidGold):
		return "invalid_gold"
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, domain.ErrMissingCurrentDate):
		return "missing_current_date"
	default:
		return "other"
	}
}
