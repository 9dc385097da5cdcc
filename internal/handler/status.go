package handler

import (
	"net/http"

	"github.com/osse101/garden-advisor/internal/augment"
	"github.com/osse101/garden-advisor/internal/style"
)

// StatusResponse describes which report sources and styles are available.
// The rule engine is always available; augmentation depends on configuration.
type StatusResponse struct {
	AugmentationEnabled bool     `json:"augmentationEnabled"`
	AugmentationSource  string   `json:"augmentationSource,omitempty"`
	FallbackAvailable   bool     `json:"fallbackAvailable"`
	RecommendedSource   string   `json:"recommendedSource"`
	Styles              []string `json:"styles"`
}

// StatusHandler reports service capabilities
type StatusHandler struct {
	selector *augment.Selector
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(selector *augment.Selector) *StatusHandler {
	return &StatusHandler{selector: selector}
}

// HandleStatus returns the advisor's capability status
// @Summary Service capability status
// @Description Reports whether AI augmentation is configured and which presentation styles exist
// @Tags status
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /status [get]
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	recommended := "rule_engine"
	if h.selector.AugmentationEnabled() {
		recommended = "augmented"
	}

	respondJSON(w, http.StatusOK, StatusResponse{
		AugmentationEnabled: h.selector.AugmentationEnabled(),
		AugmentationSource:  h.selector.SourceName(),
		FallbackAvailable:   true,
		RecommendedSource:   recommended,
		Styles:              style.Names(),
	})
}
