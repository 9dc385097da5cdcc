package domain

import "regexp"

// InGameDatePattern is the accepted "<Season>, Day <n>" date format. The
// normalizer and the transport validator both check against it.
var InGameDatePattern = regexp.MustCompile(`^(Spring|Summer|Autumn|Winter), Day [0-9]{1,2}$`)

// InteractionMode controls how much of the report is surfaced
type InteractionMode string

const (
	ModeBeginner InteractionMode = "beginner"
	ModeAdvanced InteractionMode = "advanced"
	ModeExpert   InteractionMode = "expert"
)

// ParseInteractionMode maps a raw mode string to a known mode. Unknown or
// empty values fall back to advanced: the field only affects presentation
// depth, so it is deliberately lenient.
func ParseInteractionMode(raw string) InteractionMode {
	switch InteractionMode(raw) {
	case ModeBeginner, ModeAdvanced, ModeExpert:
		return InteractionMode(raw)
	default:
		return ModeAdvanced
	}
}

// Expert option values. Options outside these sets are ignored rather than
// rejected; they bias rule selection, they are not a contract.
const (
	RiskConservative = "conservative"
	RiskBalanced     = "balanced"
	RiskAggressive   = "aggressive"

	GoalProfit  = "profit"
	GoalSpeed   = "speed"
	GoalBalance = "balance"

	HorizonShort  = "short"
	HorizonMedium = "medium"
	HorizonLong   = "long"
)

// ExpertOptions tune rule selection in expert mode
type ExpertOptions struct {
	OptimizationGoal string `json:"optimizationGoal,omitempty"`
	RiskTolerance    string `json:"riskTolerance,omitempty"`
	TimeHorizon      string `json:"timeHorizon,omitempty"`
}

// AnalysisRequest is the raw, untrusted request shape accepted at the
// boundary. Only the normalizer consumes it.
type AnalysisRequest struct {
	SelectedItems   map[string]float64 `json:"selectedItems"`
	Gold            float64            `json:"gold"`
	InGameDate      string             `json:"inGameDate"`
	CurrentDate     string             `json:"currentDate"`
	InteractionMode string             `json:"interactionMode,omitempty"`
	ExpertOptions   *ExpertOptions     `json:"expertOptions,omitempty"`
}

// NormalizedRequest is the canonical, validated request every downstream
// component operates on. Items are catalog-resolved and in canonical order.
type NormalizedRequest struct {
	Items       []DetailedItem
	Gold        float64
	InGameDate  string
	CurrentDate string
	Mode        InteractionMode
	Expert      *ExpertOptions
}

// Season of the in-game calendar
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// GamePhase derived from gold reserves
type GamePhase string

const (
	PhaseEarly GamePhase = "Early Game"
	PhaseMid   GamePhase = "Mid Game"
	PhaseLate  GamePhase = "Late Game"
)

// Game phase gold thresholds
const (
	MidGameGoldThreshold  = 200
	LateGameGoldThreshold = 1000
)

// PhaseForGold derives the game phase from gold reserves. Pure function:
// the same gold always yields the same phase.
func PhaseForGold(gold float64) GamePhase {
	switch {
	case gold < MidGameGoldThreshold:
		return PhaseEarly
	case gold < LateGameGoldThreshold:
		return PhaseMid
	default:
		return PhaseLate
	}
}

// PlayerState holds the summary features derived from a normalized request.
// Immutable per request.
type PlayerState struct {
	Gold            float64
	Season          Season
	Day             int
	GamePhase       GamePhase
	ItemCount       int
	TotalQuantity   int
	HasMultiHarvest bool
	AverageQuantity int
}
