package advisor

import (
	"fmt"

	"github.com/osse101/garden-advisor/internal/domain"
)

// titleBundle holds the mode-flavored report framing
type titleBundle struct {
	main     string
	sub      string
	anchor   string
	idPrefix string
}

var modeBundles = map[domain.InteractionMode]titleBundle{
	domain.ModeBeginner: {
		main:     "Your Garden Journey Begins",
		sub:      "SIMPLE STEPS TO SUCCESS",
		anchor:   "🌱",
		idPrefix: "GGB",
	},
	domain.ModeAdvanced: {
		main:     "Garden Strategy Report",
		sub:      "BALANCED GROWTH APPROACH",
		anchor:   "🎯",
		idPrefix: "GGSB",
	},
	domain.ModeExpert: {
		main:     "Advanced Strategic Analysis",
		sub:      "OPTIMIZATION & EFFICIENCY FOCUS",
		anchor:   "📊",
		idPrefix: "GGX",
	},
}

func bundleForMode(mode domain.InteractionMode) titleBundle {
	if bundle, ok := modeBundles[mode]; ok {
		return bundle
	}
	return modeBundles[domain.ModeAdvanced]
}

// adaptSections shapes the evaluated advice lists into the section layout the
// mode calls for. Beginner drops the optimization section and trims strategic
// planning; expert gains a fourth section when options are present.
func adaptSections(rc ruleContext, immediate, strategic, optimization []domain.AdvicePoint) []domain.ReportSection {
	sections := []domain.ReportSection{
		{ID: domain.SectionImmediateActions, Title: titleImmediateActions, Points: immediate},
		{ID: domain.SectionStrategicPlanning, Title: titleStrategicPlanning, Points: strategic},
	}

	switch rc.mode {
	case domain.ModeBeginner:
		if len(strategic) > beginnerStrategicPoints {
			sections[1].Points = strategic[:beginnerStrategicPoints]
		}
		return sections
	case domain.ModeExpert:
		sections = append(sections, domain.ReportSection{
			ID: domain.SectionOptimizationTips, Title: titleOptimizationTips, Points: optimization,
		})
		if rc.expert != nil {
			sections = append(sections, domain.ReportSection{
				ID: domain.SectionExpertFocus, Title: titleExpertFocus, Points: expertFocusPoints(rc),
			})
		}
		return sections
	default:
		return append(sections, domain.ReportSection{
			ID: domain.SectionOptimizationTips, Title: titleOptimizationTips, Points: optimization,
		})
	}
}

// expertFocusPoints builds the options-driven section. The goal point always
// fires (unknown goals read as balanced); the horizon point only when a
// horizon was supplied.
func expertFocusPoints(rc ruleContext) []domain.AdvicePoint {
	points := []domain.AdvicePoint{goalPoint(rc)}
	if horizon, ok := horizonPoint(rc); ok {
		points = append(points, horizon)
	}
	return points
}

func goalPoint(rc ruleContext) domain.AdvicePoint {
	switch rc.expert.OptimizationGoal {
	case domain.GoalProfit:
		return domain.AdvicePoint{
			Action: "Chase high-margin returns",
			Reasoning: fmt.Sprintf("With a profit goal and %s gold on hand, weight your picks toward the "+
				"highest sale-value options available in the %s.", formatGold(rc.state.Gold), rc.state.GamePhase),
			Tags: []string{"Profit", "Expert"},
		}
	case domain.GoalSpeed:
		return domain.AdvicePoint{
			Action: "Favor quick turnarounds",
			Reasoning: fmt.Sprintf("A speed goal rewards short cycles. With %d item types in play, rotate "+
				"fast-maturing options to keep income flowing.", rc.state.ItemCount),
			Tags: []string{"Speed", "Expert"},
		}
	default:
		return domain.AdvicePoint{
			Action: "Balance yield and resilience",
			Reasoning: fmt.Sprintf("A balanced goal suits your %s position. Split attention between steady "+
				"producers and opportunistic picks.", rc.state.GamePhase),
			Tags: []string{"Balance", "Expert"},
		}
	}
}

func horizonPoint(rc ruleContext) (domain.AdvicePoint, bool) {
	switch rc.expert.TimeHorizon {
	case domain.HorizonShort:
		return domain.AdvicePoint{
			Action: "Front-load your effort",
			Reasoning: fmt.Sprintf("A short horizon means %s decisions pay off now. Prioritize whatever "+
				"completes before the season turns.", rc.state.Season),
			Tags: []string{"Short Horizon", "Expert"},
		}, true
	case domain.HorizonMedium:
		return domain.AdvicePoint{
			Action: "Plan two seasons ahead",
			Reasoning: fmt.Sprintf("A medium horizon lets %s plantings mature into the next season. Stage "+
				"your investments accordingly.", rc.state.Season),
			Tags: []string{"Medium Horizon", "Expert"},
		}, true
	case domain.HorizonLong:
		return domain.AdvicePoint{
			Action: "Compound your advantage",
			Reasoning: "A long horizon favors durable assets. Multi-harvest holdings and infrastructure beat one-off gains over time.",
			Tags:      []string{"Long Horizon", "Expert"},
		}, true
	default:
		return domain.AdvicePoint{}, false
	}
}
