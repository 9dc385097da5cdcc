package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/garden-advisor/internal/domain"
)

func writeCatalogFixtures(t *testing.T, configJSON string) (configPath, schemaPath string) {
	t.Helper()
	dir := t.TempDir()

	schema, err := os.ReadFile(filepath.Join("..", "..", "configs", "schemas", "items.schema.json"))
	require.NoError(t, err)

	schemaPath = filepath.Join(dir, "items.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, schema, 0o644))

	configPath = filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0o644))
	return configPath, schemaPath
}

func TestLoadValidConfig(t *testing.T) {
	configPath, schemaPath := writeCatalogFixtures(t, `{
		"version": "1.0",
		"items": [
			{"id": 1, "name": "carrot", "display_name": "Carrot", "tier": "Common", "multi_harvest": false},
			{"id": 2, "name": "strawberry", "display_name": "Strawberry", "tier": "Common", "multi_harvest": true}
		]
	}`)

	cat, err := NewLoaderWithSchema(schemaPath).Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	item, ok := cat.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, "Carrot", item.DisplayName)
	assert.False(t, item.MultiHarvest)

	item, ok = cat.Resolve(2)
	require.True(t, ok)
	assert.True(t, item.MultiHarvest)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{
			"missing tier",
			`{"version": "1.0", "items": [{"id": 1, "name": "carrot", "display_name": "Carrot", "multi_harvest": false}]}`,
		},
		{
			"unknown tier",
			`{"version": "1.0", "items": [{"id": 1, "name": "carrot", "display_name": "Carrot", "tier": "Ultra", "multi_harvest": false}]}`,
		},
		{
			"empty items",
			`{"version": "1.0", "items": []}`,
		},
		{
			"bad internal name",
			`{"version": "1.0", "items": [{"id": 1, "name": "Carrot!", "display_name": "Carrot", "tier": "Common", "multi_harvest": false}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath, schemaPath := writeCatalogFixtures(t, tt.config)
			_, err := NewLoaderWithSchema(schemaPath).Load(configPath)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	configPath, schemaPath := writeCatalogFixtures(t, `{
		"version": "1.0",
		"items": [
			{"id": 1, "name": "carrot", "display_name": "Carrot", "tier": "Common", "multi_harvest": false},
			{"id": 1, "name": "carrot_again", "display_name": "Carrot Again", "tier": "Common", "multi_harvest": false}
		]
	}`)

	_, err := NewLoaderWithSchema(schemaPath).Load(configPath)
	assert.ErrorIs(t, err, ErrDuplicateItemID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load("does/not/exist.json")
	assert.Error(t, err)
}

func TestLoadShippedCatalog(t *testing.T) {
	loader := NewLoaderWithSchema(filepath.Join("..", "..", "configs", "schemas", "items.schema.json"))
	cat, err := loader.Load(filepath.Join("..", "..", "configs", "items.json"))
	require.NoError(t, err)

	assert.Greater(t, cat.Len(), 20)

	carrot, ok := cat.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, "Carrot", carrot.DisplayName)

	zen, ok := cat.ResolveKey("zen_rocks")
	require.True(t, ok)
	assert.Equal(t, domain.DecorationItemName, zen.DisplayName)
}

func TestResolveKey(t *testing.T) {
	cat := New([]domain.CatalogItem{
		{ID: 5, Name: "tomato", DisplayName: "Tomato", Tier: domain.TierRare, MultiHarvest: true},
	})

	byID, ok := cat.ResolveKey("5")
	require.True(t, ok)
	assert.Equal(t, "Tomato", byID.DisplayName)

	byName, ok := cat.ResolveKey("tomato")
	require.True(t, ok)
	assert.Equal(t, byID, byName)

	_, ok = cat.ResolveKey("999999")
	assert.False(t, ok)
}
