package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidConfig   = errors.New("invalid catalog configuration")
)

// ItemsSchemaPath is the JSON schema the catalog config is validated against
const ItemsSchemaPath = "configs/schemas/items.schema.json"

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string               `json:"version"`
	Description string               `json:"description"`
	Items       []domain.CatalogItem `json:"items"`
}

// Loader handles loading and validating the catalog configuration
type Loader interface {
	Load(path string) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return NewLoaderWithSchema(ItemsSchemaPath)
}

// NewLoaderWithSchema creates a Loader that validates against the schema at
// the given path. Used when the process does not run from the repo root.
func NewLoaderWithSchema(schemaPath string) Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads, validates and indexes an items JSON file
func (l *catalogLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return New(config.Items), nil
}

// validateConfig checks the catalog configuration for errors the schema
// cannot express (cross-item constraints)
func validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[int]bool, len(config.Items))
	for i := range config.Items {
		item := &config.Items[i]

		if item.DisplayName == "" {
			return fmt.Errorf(ErrFmtItemEmptyDisplay, ErrInvalidConfig, item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = true

		if !validTier(item.Tier) {
			return fmt.Errorf(ErrFmtItemBadTier, ErrInvalidConfig, item.ID, item.Tier)
		}
	}

	return nil
}

func validTier(t domain.Tier) bool {
	switch t {
	case domain.TierCommon, domain.TierUncommon, domain.TierRare, domain.TierEpic,
		domain.TierLegendary, domain.TierMythical, domain.TierDivine:
		return true
	}
	return false
}
