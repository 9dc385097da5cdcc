package style

import "github.com/osse101/garden-advisor/internal/domain"

// MagazineView is the dense, editorial presentation of a report
type MagazineView struct {
	Cover       MagazineCover        `json:"cover"`
	Profile     domain.PlayerProfile `json:"profile"`
	PullQuote   string               `json:"pullQuote"`
	Spreads     []MagazineSpread     `json:"spreads"`
	Verdict     MagazineVerdict      `json:"verdict"`
	ReadMinutes int                  `json:"readMinutes"`
}

type MagazineCover struct {
	MainTitle       string `json:"mainTitle"`
	SubTitle        string `json:"subTitle"`
	VisualAnchor    string `json:"visualAnchor"`
	PublicationDate string `json:"publicationDate"`
	Issue           string `json:"issue"`
}

type MagazineSpread struct {
	Heading string          `json:"heading"`
	Entries []MagazineEntry `json:"entries"`
}

type MagazineEntry struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	Synergy  []string `json:"synergy,omitempty"`
}

type MagazineVerdict struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	NextStep string `json:"nextStep"`
}

// RenderMagazine adapts a report into the magazine layout
func RenderMagazine(r *domain.Report) MagazineView {
	spreads := make([]MagazineSpread, 0, len(r.Sections))
	for _, section := range r.Sections {
		entries := make([]MagazineEntry, 0, len(section.Points))
		for _, point := range section.Points {
			entries = append(entries, MagazineEntry{
				Headline: point.Action,
				Body:     point.Reasoning,
				Tags:     point.Tags,
				Synergy:  point.Synergy,
			})
		}
		spreads = append(spreads, MagazineSpread{Heading: section.Title, Entries: entries})
	}

	return MagazineView{
		Cover: MagazineCover{
			MainTitle:       r.MainTitle,
			SubTitle:        r.SubTitle,
			VisualAnchor:    r.VisualAnchor,
			PublicationDate: r.PublicationDate,
			Issue:           r.ReportID,
		},
		Profile:   r.PlayerProfile,
		PullQuote: r.MidBreakerQuote,
		Spreads:   spreads,
		Verdict: MagazineVerdict{
			Title:    r.FooterAnalysis.Title,
			Body:     r.FooterAnalysis.Conclusion,
			NextStep: r.FooterAnalysis.CallToAction,
		},
		ReadMinutes: estimateReadMinutes(r),
	}
}
