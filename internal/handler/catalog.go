package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/domain"
)

// CatalogItemsResponse lists every item the advisor knows about
type CatalogItemsResponse struct {
	Items []domain.CatalogItem `json:"items"`
	Count int                  `json:"count"`
}

// CatalogHandler serves the read-only item catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// HandleListItems returns the full item catalog
// @Summary List catalog items
// @Description Returns every item definition the advisor resolves selections against
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogItemsResponse
// @Router /catalog/items [get]
func (h *CatalogHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.Items()
	respondJSON(w, http.StatusOK, CatalogItemsResponse{Items: items, Count: len(items)})
}

// HandleGetItem returns a single catalog item by id or internal name.
// Unlike report generation, a browse lookup of a missing item is a hard 404:
// graceful degradation is for analysis requests only.
// @Summary Get a catalog item
// @Description Looks up one item by numeric id or internal name
// @Tags catalog
// @Produce json
// @Param id path string true "Item id or internal name"
// @Success 200 {object} domain.CatalogItem
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /catalog/items/{id} [get]
func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	if key == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return
	}

	item, ok := h.catalog.ResolveKey(key)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgItemNotFoundHTTP)
		return
	}

	respondJSON(w, http.StatusOK, item)
}
