package domain

import "fmt"

// Tier represents the rarity tier of a catalog item
type Tier string

const (
	TierCommon    Tier = "Common"
	TierUncommon  Tier = "Uncommon"
	TierRare      Tier = "Rare"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
	TierMythical  Tier = "Mythical"
	TierDivine    Tier = "Divine"
)

// Item property names attached to detailed items during normalization
const (
	PropertyMultiHarvest = "multi-harvest"
	PropertyNonSellable  = "non-sellable"
	PropertyDecoration   = "decoration"
)

// DecorationItemName is always tagged non-sellable/decoration regardless of
// catalog flags
const DecorationItemName = "Zen Rocks"

// CatalogItem is a read-only item definition from the catalog config
type CatalogItem struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	DisplayName  string             `json:"display_name"`
	Tier         Tier               `json:"tier"`
	Source       string             `json:"source,omitempty"`
	MultiHarvest bool               `json:"multi_harvest"`
	Prices       map[string]float64 `json:"prices,omitempty"`
}

// DetailedItem is the catalog-resolved unit the advice engine reasons over.
// Downstream components never see raw item ids again.
type DetailedItem struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Properties []string `json:"properties"`
}

// HasProperty reports whether the item carries the named property
func (d DetailedItem) HasProperty(name string) bool {
	for _, p := range d.Properties {
		if p == name {
			return true
		}
	}
	return false
}

// PlaceholderName returns the display name used for unresolved catalog ids
func PlaceholderName(id string) string {
	return fmt.Sprintf("Unknown Item %s", id)
}
