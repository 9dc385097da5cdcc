package domain

// Stable section ids used by every report source
const (
	SectionImmediateActions  = "immediate_actions"
	SectionStrategicPlanning = "strategic_planning"
	SectionOptimizationTips  = "optimization_tips"
	SectionExpertFocus       = "expert_focus"
)

// AdvicePoint is a single actionable recommendation.
// Action and Reasoning are always non-empty; Tags may be empty.
type AdvicePoint struct {
	Action    string   `json:"action"`
	Reasoning string   `json:"reasoning"`
	Tags      []string `json:"tags"`
	Synergy   []string `json:"synergy,omitempty"`
}

// ReportSection groups advice points under a stable slug
type ReportSection struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Points []AdvicePoint `json:"points"`
}

// PlayerProfile summarizes the player's strategic position
type PlayerProfile struct {
	Title     string `json:"title"`
	Archetype string `json:"archetype"`
	Summary   string `json:"summary"`
}

// FooterAnalysis closes the report with a verdict and a call to action
type FooterAnalysis struct {
	Title        string `json:"title"`
	Conclusion   string `json:"conclusion"`
	CallToAction string `json:"callToAction"`
}

// Report is the sole output of report generation. It is created fresh on
// every request and never partially populated.
type Report struct {
	ReportID        string          `json:"reportId"`
	PublicationDate string          `json:"publicationDate"`
	MainTitle       string          `json:"mainTitle"`
	SubTitle        string          `json:"subTitle"`
	VisualAnchor    string          `json:"visualAnchor"`
	PlayerProfile   PlayerProfile   `json:"playerProfile"`
	MidBreakerQuote string          `json:"midBreakerQuote"`
	Sections        []ReportSection `json:"sections"`
	FooterAnalysis  FooterAnalysis  `json:"footerAnalysis"`
}

// Section returns the section with the given id, if present
func (r *Report) Section(id string) (*ReportSection, bool) {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the report. Used by the augmentation cache so
// a cached body can be restamped without mutating the stored value.
func (r *Report) Clone() *Report {
	out := *r
	out.Sections = make([]ReportSection, len(r.Sections))
	for i, sec := range r.Sections {
		points := make([]AdvicePoint, len(sec.Points))
		for j, p := range sec.Points {
			points[j] = p
			points[j].Tags = append([]string(nil), p.Tags...)
			points[j].Synergy = append([]string(nil), p.Synergy...)
		}
		out.Sections[i] = ReportSection{ID: sec.ID, Title: sec.Title, Points: points}
	}
	return &out
}
