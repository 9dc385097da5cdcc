package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/garden-advisor/internal/domain"
)

func catalogRouter() http.Handler {
	h := NewCatalogHandler(handlerTestCatalog())
	r := chi.NewRouter()
	r.Get("/catalog/items", h.HandleListItems)
	r.Get("/catalog/items/{id}", h.HandleGetItem)
	return r
}

func TestHandleListItems(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Items, 2)
}

func TestHandleGetItem(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		expectedCode int
		expectedItem string
	}{
		{"by id", "/catalog/items/1", http.StatusOK, "Carrot"},
		{"by name", "/catalog/items/strawberry", http.StatusOK, "Strawberry"},
		{"missing id is a hard 404", "/catalog/items/999999", http.StatusNotFound, ""},
		{"missing name is a hard 404", "/catalog/items/turnip", http.StatusNotFound, ""},
	}

	router := catalogRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedItem != "" {
				var item domain.CatalogItem
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
				assert.Equal(t, tt.expectedItem, item.DisplayName)
			}
		})
	}
}
