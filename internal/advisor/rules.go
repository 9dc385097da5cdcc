package advisor

import (
	"fmt"
	"strconv"

	"github.com/osse101/garden-advisor/internal/domain"
)

// ruleContext carries everything a rule predicate or template may inspect
type ruleContext struct {
	items  []domain.DetailedItem
	state  domain.PlayerState
	mode   domain.InteractionMode
	expert *domain.ExpertOptions
}

// adviceRule pairs a predicate with an advice point template. Rules are held
// in ordered tables per section; adding advice is a data change, not a
// control-flow edit.
type adviceRule struct {
	name    string
	applies func(ruleContext) bool
	point   func(ruleContext) domain.AdvicePoint
}

// evalRules collects the points of every applicable rule in table order,
// truncating at limit when limit > 0.
func evalRules(rules []adviceRule, rc ruleContext, limit int) []domain.AdvicePoint {
	points := make([]domain.AdvicePoint, 0, len(rules))
	for _, rule := range rules {
		if !rule.applies(rc) {
			continue
		}
		points = append(points, rule.point(rc))
		if limit > 0 && len(points) == limit {
			break
		}
	}
	return points
}

// investBranch decides the gold-threshold branch of the immediate actions.
// Expert risk tolerance biases the branch; invest and efficiency are exact
// complements so exactly one fires per request.
func investBranch(rc ruleContext) bool {
	if rc.expert != nil {
		switch rc.expert.RiskTolerance {
		case domain.RiskAggressive:
			return true
		case domain.RiskConservative:
			return false
		}
	}
	return rc.state.Gold > investGoldThreshold
}

// topItem returns the highest-quantity item. Ties go to the earliest item in
// canonical order, which the normalizer fixed already.
func topItem(items []domain.DetailedItem) domain.DetailedItem {
	top := items[0]
	for _, item := range items[1:] {
		if item.Quantity > top.Quantity {
			top = item
		}
	}
	return top
}

// formatGold renders gold without a trailing ".0" for whole values
func formatGold(gold float64) string {
	return strconv.FormatFloat(gold, 'f', -1, 64)
}

var immediateRules = []adviceRule{
	{
		name:    "focus_top_item",
		applies: func(ruleContext) bool { return true },
		point: func(rc ruleContext) domain.AdvicePoint {
			top := topItem(rc.items)
			tail := "Maximize its potential through strategic placement and timing."
			if top.HasProperty(domain.PropertyMultiHarvest) {
				tail = "This multi-harvest crop will provide ongoing returns."
			}
			return domain.AdvicePoint{
				Action: fmt.Sprintf("Focus on %s", top.Name),
				Reasoning: fmt.Sprintf("You have %d units of %s, making it your strongest asset. %s",
					top.Quantity, top.Name, tail),
				Tags: []string{"High Priority", "Resource Management"},
			}
		},
	},
	{
		name:    "invest_expand",
		applies: investBranch,
		point: func(rc ruleContext) domain.AdvicePoint {
			return domain.AdvicePoint{
				Action: "Invest in expansion",
				Reasoning: fmt.Sprintf("With %s gold available, you have good resources for strategic investments. "+
					"Consider diversifying your portfolio or upgrading existing assets.", formatGold(rc.state.Gold)),
				Tags: []string{"Investment", "Growth"},
			}
		},
	},
	{
		name:    "prioritize_efficiency",
		applies: func(rc ruleContext) bool { return !investBranch(rc) },
		point: func(rc ruleContext) domain.AdvicePoint {
			return domain.AdvicePoint{
				Action: "Focus on efficiency",
				Reasoning: fmt.Sprintf("With %s gold, prioritize high-return activities and avoid unnecessary expenses. "+
					"Build your foundation steadily.", formatGold(rc.state.Gold)),
				Tags: []string{"Efficiency", "Foundation"},
			}
		},
	},
	{
		name:    "start_with_basics",
		applies: func(rc ruleContext) bool { return rc.mode == domain.ModeBeginner },
		point: func(rc ruleContext) domain.AdvicePoint {
			return domain.AdvicePoint{
				Action: "Start with basics",
				Reasoning: fmt.Sprintf("Master the fundamentals first. Focus on your %d selected item types and "+
					"understand core mechanics before exploring advanced strategies.", rc.state.ItemCount),
				Tags: []string{"Learning", "Basics"},
			}
		},
	},
}

// seasonalAdvice supplies exactly one strategic point per season
var seasonalAdvice = map[domain.Season]domain.AdvicePoint{
	domain.SeasonSpring: {
		Action:    "Plan for growth season",
		Reasoning: "Spring offers the best planting opportunities. Focus on establishing new crops and expanding your garden layout.",
		Tags:      []string{"Seasonal", "Planning", "Growth"},
	},
	domain.SeasonSummer: {
		Action:    "Maximize productivity",
		Reasoning: "Summer's peak growing conditions are perfect for high-yield strategies. Optimize your harvesting schedule.",
		Tags:      []string{"Seasonal", "Productivity", "Optimization"},
	},
	domain.SeasonAutumn: {
		Action:    "Prepare for harvest",
		Reasoning: "Autumn is harvest time. Focus on collecting resources and preparing for the quieter winter season.",
		Tags:      []string{"Seasonal", "Harvest", "Preparation"},
	},
	domain.SeasonWinter: {
		Action:    "Strategic planning",
		Reasoning: "Winter's slower pace is perfect for planning next year's strategy and making infrastructure improvements.",
		Tags:      []string{"Seasonal", "Strategy", "Infrastructure"},
	},
}

var strategicRules = []adviceRule{
	{
		name:    "seasonal_outlook",
		applies: func(ruleContext) bool { return true },
		point: func(rc ruleContext) domain.AdvicePoint {
			if point, ok := seasonalAdvice[rc.state.Season]; ok {
				return point
			}
			return seasonalAdvice[domain.SeasonSpring]
		},
	},
	{
		name:    "diversify_collection",
		applies: func(rc ruleContext) bool { return rc.state.ItemCount < 3 },
		point: func(rc ruleContext) domain.AdvicePoint {
			return domain.AdvicePoint{
				Action: "Diversify your collection",
				Reasoning: fmt.Sprintf("Having only %d item types increases risk. Consider adding complementary "+
					"items to create a more balanced portfolio.", rc.state.ItemCount),
				Tags: []string{"Diversification", "Risk Management"},
			}
		},
	},
	{
		name:    "optimize_synergies",
		applies: func(rc ruleContext) bool { return rc.state.ItemCount >= 3 },
		point: func(rc ruleContext) domain.AdvicePoint {
			synergy := []string{rc.items[0].Name, rc.items[1].Name}
			return domain.AdvicePoint{
				Action: "Optimize synergies",
				Reasoning: fmt.Sprintf("With %d different item types, look for combinations that work well "+
					"together and create beneficial synergies.", rc.state.ItemCount),
				Tags:    []string{"Synergy", "Optimization"},
				Synergy: synergy,
			}
		},
	},
}

// phaseAdvice supplies exactly one optimization point per game phase
var phaseAdvice = map[domain.GamePhase]domain.AdvicePoint{
	domain.PhaseEarly: {
		Action:    "Build strong foundations",
		Reasoning: "Early Game success comes from establishing reliable income sources and learning core mechanics thoroughly.",
		Tags:      []string{"Foundation", "Learning"},
	},
	domain.PhaseMid: {
		Action:    "Scale strategically",
		Reasoning: "Mid Game is about smart expansion. Balance growth with stability, and don't overextend your resources.",
		Tags:      []string{"Scaling", "Balance"},
	},
	domain.PhaseLate: {
		Action:    "Pursue perfection",
		Reasoning: "Late Game allows for fine-tuning and optimization. Focus on maximizing efficiency and exploring advanced strategies.",
		Tags:      []string{"Optimization", "Advanced"},
	},
}

var optimizationRules = []adviceRule{
	{
		name:    "phase_focus",
		applies: func(ruleContext) bool { return true },
		point: func(rc ruleContext) domain.AdvicePoint {
			return phaseAdvice[rc.state.GamePhase]
		},
	},
	{
		name:    "manage_resources",
		applies: func(ruleContext) bool { return true },
		point: func(rc ruleContext) domain.AdvicePoint {
			return domain.AdvicePoint{
				Action: "Manage resources wisely",
				Reasoning: fmt.Sprintf("With %s gold and %d item types, balance immediate needs with long-term "+
					"investments for sustainable growth.", formatGold(rc.state.Gold), rc.state.ItemCount),
				Tags: []string{"Resource Management", "Sustainability"},
			}
		},
	},
}
