package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/augment"
	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/logger"
	"github.com/osse101/garden-advisor/internal/style"
)

// AnalyzeRequest represents the request to generate a strategy report
type AnalyzeRequest struct {
	SelectedItems   map[string]float64    `json:"selectedItems" validate:"required,min=1"`
	Gold            float64               `json:"gold" validate:"gte=0"`
	InGameDate      string                `json:"inGameDate" validate:"required,ingamedate"`
	CurrentDate     string                `json:"currentDate" validate:"required"`
	InteractionMode string                `json:"interactionMode"`
	ExpertOptions   *domain.ExpertOptions `json:"expertOptions"`
}

func (r AnalyzeRequest) toDomain() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		SelectedItems:   r.SelectedItems,
		Gold:            r.Gold,
		InGameDate:      r.InGameDate,
		CurrentDate:     r.CurrentDate,
		InteractionMode: r.InteractionMode,
		ExpertOptions:   r.ExpertOptions,
	}
}

// StyledReportResponse wraps a report rendered for a presentation style
type StyledReportResponse struct {
	Style  string `json:"style"`
	Report any    `json:"report"`
}

// AnalyzeHandler handles report generation requests
type AnalyzeHandler struct {
	advisorSvc advisor.Service
	selector   *augment.Selector
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(advisorSvc advisor.Service, selector *augment.Selector) *AnalyzeHandler {
	return &AnalyzeHandler{advisorSvc: advisorSvc, selector: selector}
}

// HandleAnalyze generates a strategy report
// @Summary Generate a strategy report
// @Description Analyzes the selected items, gold, and in-game date and returns a structured advice report
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Analysis request"
// @Success 200 {object} domain.Report "Generated report"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analyze [post]
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, ok := h.generate(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleAnalyzeStyled generates a report and renders it for a presentation style
// @Summary Generate a styled strategy report
// @Description Generates a report and adapts it into the requested presentation view (magazine, minimal, dashboard)
// @Tags analyze
// @Accept json
// @Produce json
// @Param style query string false "Presentation style" Enums(magazine, minimal, dashboard)
// @Param request body AnalyzeRequest true "Analysis request"
// @Success 200 {object} StyledReportResponse "Styled report"
// @Failure 400 {object} ErrorResponse "Invalid request or style"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analyze/styled [post]
func (h *AnalyzeHandler) HandleAnalyzeStyled(w http.ResponseWriter, r *http.Request) {
	rawStyle := GetOptionalQueryParam(r, "style", "")
	selected, ok := style.Parse(rawStyle)
	if !ok {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf(ErrMsgInvalidStyle, rawStyle, strings.Join(style.Names(), ", ")))
		return
	}

	report, ok := h.generate(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, StyledReportResponse{
		Style:  string(selected),
		Report: style.Render(selected, report),
	})
}

// generate runs decode, normalize, and report generation. On failure the
// response has already been written and ok is false.
func (h *AnalyzeHandler) generate(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	log := logger.FromContext(r.Context())

	var req AnalyzeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Analyze"); err != nil {
		return nil, false
	}

	log.Info("Analyze request received",
		"items", len(req.SelectedItems),
		"gold", req.Gold,
		"mode", req.InteractionMode)

	normalized, err := h.advisorSvc.Normalize(r.Context(), req.toDomain())
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return nil, false
	}

	return h.selector.Generate(r.Context(), normalized), true
}
