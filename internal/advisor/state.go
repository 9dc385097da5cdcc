package advisor

import (
	"math"
	"strconv"
	"strings"

	"github.com/osse101/garden-advisor/internal/domain"
)

// analyzePlayerState derives the summary features the rule tables key on.
// Pure function; the normalizer guarantees the date parses and items are
// non-empty.
func analyzePlayerState(n *domain.NormalizedRequest) domain.PlayerState {
	season, day := parseInGameDate(n.InGameDate)

	total := 0
	multiHarvest := false
	for _, item := range n.Items {
		total += item.Quantity
		if item.HasProperty(domain.PropertyMultiHarvest) {
			multiHarvest = true
		}
	}

	count := len(n.Items)
	average := 0
	if count > 0 {
		average = int(math.Round(float64(total) / float64(count)))
	}

	return domain.PlayerState{
		Gold:            n.Gold,
		Season:          season,
		Day:             day,
		GamePhase:       domain.PhaseForGold(n.Gold),
		ItemCount:       count,
		TotalQuantity:   total,
		HasMultiHarvest: multiHarvest,
		AverageQuantity: average,
	}
}

// parseInGameDate splits a validated "<Season>, Day <n>" string. Out-of-range
// days are clamped; the day never drives rule selection.
func parseInGameDate(date string) (domain.Season, int) {
	parts := strings.SplitN(date, ", Day ", 2)
	season := domain.Season(parts[0])

	day := minGameDay
	if len(parts) == 2 {
		if parsed, err := strconv.Atoi(parts[1]); err == nil {
			day = parsed
		}
	}
	if day < minGameDay {
		day = minGameDay
	}
	if day > maxGameDay {
		day = maxGameDay
	}

	return season, day
}
