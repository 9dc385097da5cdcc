package advisor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/garden-advisor/internal/domain"
)

// seasonalQuotes supply the mid-breaker flavor line
var seasonalQuotes = map[domain.Season]string{
	domain.SeasonSpring: "Every garden begins with a single seed and the courage to plant it.",
	domain.SeasonSummer: "In the peak of growth, wise gardeners prepare for tomorrow's harvest.",
	domain.SeasonAutumn: "The fruits of patience and planning are sweetest when shared.",
	domain.SeasonWinter: "In quiet seasons, the best strategies take root and grow strong.",
}

const defaultQuote = "Success grows from the seeds of smart planning and patient cultivation."

var phaseFocus = map[domain.GamePhase]string{
	domain.PhaseEarly: "building your foundation",
	domain.PhaseMid:   "expanding strategically",
	domain.PhaseLate:  "optimizing for maximum efficiency",
}

var phaseCallToAction = map[domain.GamePhase]string{
	domain.PhaseEarly: "Focus on learning and building your foundation step by step.",
	domain.PhaseMid:   "Expand strategically while maintaining what you've built.",
	domain.PhaseLate:  "Optimize for maximum efficiency and explore advanced techniques.",
}

var seasonalNotes = map[domain.Season]string{
	domain.SeasonSpring: " Take advantage of the growing season!",
	domain.SeasonSummer: " Make the most of peak productivity!",
	domain.SeasonAutumn: " Prepare for a successful harvest!",
	domain.SeasonWinter: " Use this planning time wisely!",
}

// assembleReport combines everything into the final report. Deterministic for
// identical inputs apart from the report id and whatever the clock says.
func (s *service) assembleReport(n *domain.NormalizedRequest, st domain.PlayerState, archetype string, sections []domain.ReportSection, bundle titleBundle) *domain.Report {
	return &domain.Report{
		ReportID:        s.newReportID(bundle.idPrefix),
		PublicationDate: n.CurrentDate,
		MainTitle:       bundle.main,
		SubTitle:        bundle.sub,
		VisualAnchor:    bundle.anchor,
		PlayerProfile: domain.PlayerProfile{
			Title:     profileTitle,
			Archetype: archetype,
			Summary:   playerSummary(st),
		},
		MidBreakerQuote: seasonalQuote(st.Season),
		Sections:        sections,
		FooterAnalysis: domain.FooterAnalysis{
			Title:        footerTitle,
			Conclusion:   conclusion(st),
			CallToAction: callToAction(st),
		},
	}
}

// newReportID builds "<prefix>-<unix-ms>-<random>". Unique enough within a
// session; nothing persists report ids.
func (s *service) newReportID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:reportIDSuffixLength]
	return fmt.Sprintf("%s-%d-%s", prefix, s.now().UnixMilli(), suffix)
}

func seasonalQuote(season domain.Season) string {
	if quote, ok := seasonalQuotes[season]; ok {
		return quote
	}
	return defaultQuote
}

func playerSummary(st domain.PlayerState) string {
	harvestNote := "Consider adding some multi-harvest crops for steady returns."
	if st.HasMultiHarvest {
		harvestNote = "Your multi-harvest crops show smart long-term thinking."
	}
	return fmt.Sprintf("You're in the %s with %s gold and %d different item types. %s Focus on %s.",
		st.GamePhase, formatGold(st.Gold), st.ItemCount, harvestNote, phaseFocus[st.GamePhase])
}

func conclusion(st domain.PlayerState) string {
	spread := "a focused approach"
	if st.ItemCount > 3 {
		spread = "good diversification"
	}
	harvestNote := "Consider adding multi-harvest options for steady income."
	if st.HasMultiHarvest {
		harvestNote = "Your multi-harvest investments demonstrate smart long-term thinking."
	}
	return fmt.Sprintf("Your %s strategy shows %s with %s gold in resources. %s "+
		"Continue building systematically while staying adaptable to new opportunities.",
		strings.ToLower(string(st.GamePhase)), spread, formatGold(st.Gold), harvestNote)
}

func callToAction(st domain.PlayerState) string {
	return phaseCallToAction[st.GamePhase] + seasonalNotes[st.Season]
}
