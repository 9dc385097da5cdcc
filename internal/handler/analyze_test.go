package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/augment"
	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/domain"
)

func handlerTestCatalog() *catalog.Catalog {
	return catalog.New([]domain.CatalogItem{
		{ID: 1, Name: "carrot", DisplayName: "Carrot", Tier: domain.TierCommon},
		{ID: 2, Name: "strawberry", DisplayName: "Strawberry", Tier: domain.TierCommon, MultiHarvest: true},
	})
}

func newAnalyzeHandler() *AnalyzeHandler {
	cat := handlerTestCatalog()
	svc := advisor.NewService(cat)
	selector := augment.NewSelector(svc, nil, augment.Options{
		Timeout: time.Second, CacheSize: 4, CacheTTL: time.Minute,
	})
	return NewAnalyzeHandler(svc, selector)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func validAnalyzeBody() map[string]any {
	return map[string]any{
		"selectedItems":   map[string]float64{"1": 5},
		"gold":            50,
		"inGameDate":      "Spring, Day 1",
		"currentDate":     "2025-01-01",
		"interactionMode": "advanced",
	}
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	h := newAnalyzeHandler()

	rec := postJSON(t, h.HandleAnalyze, "/api/v1/analyze", validAnalyzeBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Aspiring Novice", report.PlayerProfile.Archetype)
	assert.Len(t, report.Sections, 3)
	assert.Equal(t, "2025-01-01", report.PublicationDate)
	assert.NotEmpty(t, report.ReportID)
}

func TestHandleAnalyzeValidationFailures(t *testing.T) {
	h := newAnalyzeHandler()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"empty selection", func(b map[string]any) { b["selectedItems"] = map[string]float64{} }},
		{"negative gold", func(b map[string]any) { b["gold"] = -5 }},
		{"bad date", func(b map[string]any) { b["inGameDate"] = "not a date" }},
		{"missing current date", func(b map[string]any) { delete(b, "currentDate") }},
		{"zero quantity", func(b map[string]any) { b["selectedItems"] = map[string]float64{"1": 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validAnalyzeBody()
			tt.mutate(body)

			rec := postJSON(t, h.HandleAnalyze, "/api/v1/analyze", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleAnalyzeMalformedBody(t *testing.T) {
	h := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeUnknownItemStillSucceeds(t *testing.T) {
	h := newAnalyzeHandler()

	body := validAnalyzeBody()
	body["selectedItems"] = map[string]float64{"999999": 3}

	rec := postJSON(t, h.HandleAnalyze, "/api/v1/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown Item 999999")
}

func TestHandleAnalyzeStyled(t *testing.T) {
	h := newAnalyzeHandler()

	tests := []struct {
		name          string
		target        string
		expectedCode  int
		expectedStyle string
	}{
		{"default style", "/api/v1/analyze/styled", http.StatusOK, "magazine"},
		{"minimal", "/api/v1/analyze/styled?style=minimal", http.StatusOK, "minimal"},
		{"dashboard", "/api/v1/analyze/styled?style=dashboard", http.StatusOK, "dashboard"},
		{"unknown style", "/api/v1/analyze/styled?style=brutalist", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleAnalyzeStyled, tt.target, validAnalyzeBody())
			require.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp StyledReportResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedStyle, resp.Style)
				assert.NotNil(t, resp.Report)
			}
		})
	}
}
