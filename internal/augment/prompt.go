package augment

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/garden-advisor/internal/domain"
)

const promptTemplate = `You are a seasoned strategist for the game "Grow a Garden." Your tone is that of an elite mentor: authoritative, concise, and highly strategic. Your entire response must be in authentic, natural-sounding English.

TASK: Analyze the player's data and generate a strategy report JSON object.

Player's current status:
- In-game date: %s
- Gold: %s
- Interaction mode: %s
- Detailed items list: %s

The JSON output MUST follow this exact structure, with these exact section ids:
{
  "reportId": "A unique identifier, like 'GGSB-1700000000000-a1b2c3d4'.",
  "publicationDate": "%s",
  "mainTitle": "A short report title.",
  "subTitle": "AN UPPERCASE TAGLINE",
  "visualAnchor": "A single impactful glyph or letter.",
  "playerProfile": {
    "title": "Player Profile",
    "archetype": "A concise player archetype, e.g. 'Strategic Investor'.",
    "summary": "A powerful, single-sentence summary of the player's strategic position."
  },
  "midBreakerQuote": "A single insightful quote distilled from the analysis.",
  "sections": [
    {
      "id": "immediate_actions",
      "title": "Priority Actions 🎯",
      "points": [
        {"action": "A short, verb-first command.", "reasoning": "The strategic value of this action, referencing the player's actual items and gold.", "tags": ["High Priority"]}
      ]
    },
    {
      "id": "strategic_planning",
      "title": "Strategic Planning 🗺️",
      "points": [
        {"action": "A key mid-term task.", "reasoning": "Its impact on the seasons ahead.", "tags": ["Seasonal"]}
      ]
    },
    {
      "id": "optimization_tips",
      "title": "Optimization Tips ✨",
      "points": [
        {"action": "An overlooked combo or strategy.", "reasoning": "How this creates outsized returns.", "synergy": ["item_name_1", "item_name_2"], "tags": ["Synergy"]}
      ]
    }
  ],
  "footerAnalysis": {
    "title": "Strategic Assessment",
    "conclusion": "The final verdict with a clear directional recommendation.",
    "callToAction": "The single most important thing to do next."
  }
}

The entire output must be a single, valid JSON object and nothing else.`

// buildPrompt renders the model prompt for a normalized request
func buildPrompt(n *domain.NormalizedRequest) string {
	items, _ := json.Marshal(n.Items)
	return fmt.Sprintf(promptTemplate,
		n.InGameDate,
		formatNumber(n.Gold),
		string(n.Mode),
		string(items),
		n.CurrentDate,
	)
}

func formatNumber(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
