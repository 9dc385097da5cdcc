package augment

import (
	"fmt"

	"github.com/osse101/garden-advisor/internal/domain"
)

// validateReport checks that an externally produced report honors the same
// structural contract as the rule engine. Anything that fails here is
// discarded and the deterministic report is served instead.
func validateReport(r *domain.Report) error {
	if r == nil {
		return fmt.Errorf("%w: nil report", domain.ErrMalformedReport)
	}
	if r.MainTitle == "" || r.SubTitle == "" || r.VisualAnchor == "" {
		return fmt.Errorf("%w: missing titles", domain.ErrMalformedReport)
	}
	if r.PlayerProfile.Archetype == "" || r.PlayerProfile.Summary == "" {
		return fmt.Errorf("%w: incomplete player profile", domain.ErrMalformedReport)
	}
	if r.FooterAnalysis.Conclusion == "" || r.FooterAnalysis.CallToAction == "" {
		return fmt.Errorf("%w: incomplete footer analysis", domain.ErrMalformedReport)
	}
	if len(r.Sections) == 0 {
		return fmt.Errorf("%w: no sections", domain.ErrMalformedReport)
	}
	for _, section := range r.Sections {
		if section.ID == "" || section.Title == "" {
			return fmt.Errorf("%w: section missing id or title", domain.ErrMalformedReport)
		}
		if len(section.Points) == 0 {
			return fmt.Errorf("%w: section %q has no points", domain.ErrMalformedReport, section.ID)
		}
		for _, point := range section.Points {
			if point.Action == "" || point.Reasoning == "" {
				return fmt.Errorf("%w: empty advice point in section %q", domain.ErrMalformedReport, section.ID)
			}
		}
	}
	return nil
}

// conformToMode trims an external report to the section count the mode allows.
// The model sometimes over-delivers; content substitution must never change
// the structural shape the caller expects.
func conformToMode(r *domain.Report, mode domain.InteractionMode) {
	limit := 3
	switch mode {
	case domain.ModeBeginner:
		limit = 2
	case domain.ModeExpert:
		limit = 4
	}
	if len(r.Sections) > limit {
		r.Sections = r.Sections[:limit]
	}
	for i := range r.Sections {
		for j := range r.Sections[i].Points {
			if r.Sections[i].Points[j].Tags == nil {
				r.Sections[i].Points[j].Tags = []string{}
			}
		}
	}
}
