package advisor

import "github.com/osse101/garden-advisor/internal/domain"

// Player archetype labels
const (
	ArchetypeStrategicInvestor = "Strategic Investor"
	ArchetypeEfficiencyExpert  = "Efficiency Expert"
	ArchetypeDiversifiedGrower = "Diversified Grower"
	ArchetypeAspiringNovice    = "Aspiring Novice"
	ArchetypeGardenStrategist  = "Garden Strategist"
)

type archetypeRule struct {
	archetype string
	matches   func(domain.PlayerState) bool
}

// archetypeRules is evaluated in order; the first match wins. Precedence:
// wealth plus diversity is the strongest signal, then sustainability
// (multi-harvest), then diversity alone, then low gold, then the catch-all.
// New rules must be slotted with this ordering in mind.
var archetypeRules = []archetypeRule{
	{ArchetypeStrategicInvestor, func(st domain.PlayerState) bool {
		return st.Gold > 1000 && st.ItemCount > 5
	}},
	{ArchetypeEfficiencyExpert, func(st domain.PlayerState) bool {
		return st.HasMultiHarvest
	}},
	{ArchetypeDiversifiedGrower, func(st domain.PlayerState) bool {
		return st.ItemCount > 3
	}},
	{ArchetypeAspiringNovice, func(st domain.PlayerState) bool {
		return st.Gold < domain.MidGameGoldThreshold
	}},
	{ArchetypeGardenStrategist, func(domain.PlayerState) bool {
		return true
	}},
}

// classifyArchetype maps player state to exactly one archetype label
func classifyArchetype(st domain.PlayerState) string {
	for _, rule := range archetypeRules {
		if rule.matches(st) {
			return rule.archetype
		}
	}
	return ArchetypeGardenStrategist
}
