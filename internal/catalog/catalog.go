// Package catalog provides the read-only item catalog the advice engine
// resolves item ids against. The catalog is built once at process start and
// never mutated, so concurrent lookups need no coordination.
package catalog

import (
	"strconv"

	"github.com/osse101/garden-advisor/internal/domain"
)

// Catalog is an immutable id/name index over the configured items
type Catalog struct {
	byID   map[int]*domain.CatalogItem
	byName map[string]*domain.CatalogItem
	items  []domain.CatalogItem
}

// New builds a catalog from item definitions. Later duplicates win, matching
// last-write-wins semantics at the config level.
func New(items []domain.CatalogItem) *Catalog {
	c := &Catalog{
		byID:   make(map[int]*domain.CatalogItem, len(items)),
		byName: make(map[string]*domain.CatalogItem, len(items)),
		items:  make([]domain.CatalogItem, len(items)),
	}
	copy(c.items, items)
	for i := range c.items {
		item := &c.items[i]
		c.byID[item.ID] = item
		c.byName[item.Name] = item
	}
	return c
}

// Resolve looks up an item by numeric id
func (c *Catalog) Resolve(id int) (*domain.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// ResolveKey looks up an item by a raw request key. Numeric keys resolve by
// id, anything else by internal name.
func (c *Catalog) ResolveKey(key string) (*domain.CatalogItem, bool) {
	if id, err := strconv.Atoi(key); err == nil {
		return c.Resolve(id)
	}
	item, ok := c.byName[key]
	return item, ok
}

// Items returns a copy of all catalog items in config order
func (c *Catalog) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}
