package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/catalog"
	"storefront-service/internal/models"
)

func testData() *models.Catalog {
	return &models.Catalog{
		Products: []models.Product{
			{ID: "p-001", Slug: "air-max-pro", Title: "AirMax Pro Running Shoes", Category: "shoes", Price: 50, Colors: []string{"Black"}, Sizes: []string{"M"}},
			{ID: "p-002", Slug: "trail-blazer", Title: "Trail Blazer", Category: "shoes", Price: 80, Colors: []string{"Red"}, Sizes: []string{"L"}},
			{ID: "p-003", Slug: "city-tote", Title: "City Tote", Category: "bags", Price: 30, Colors: []string{"Black"}, Sizes: []string{"One Size"}},
		},
		Categories: []models.Category{
			{ID: "shoes", Name: "Shoes", Slug: "shoes"},
			{ID: "bags", Name: "Bags", Slug: "bags"},
		},
	}
}

func newTestRepo(t *testing.T) *CatalogRepository {
	t.Helper()
	repo, err := NewCatalogRepository(testData(), nil, logrus.New())
	require.NoError(t, err)
	return repo
}

func TestNewCatalogRepository_RejectsDuplicateSlug(t *testing.T) {
	data := testData()
	data.Products = append(data.Products, models.Product{ID: "p-004", Slug: "air-max-pro"})

	_, err := NewCatalogRepository(data, nil, logrus.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "air-max-pro")
}

func TestCatalogRepository_Lookups(t *testing.T) {
	repo := newTestRepo(t)

	p, ok := repo.ProductBySlug("air-max-pro")
	require.True(t, ok)
	assert.Equal(t, "p-001", p.ID)

	p, ok = repo.ProductByID("p-003")
	require.True(t, ok)
	assert.Equal(t, "city-tote", p.Slug)

	_, ok = repo.ProductBySlug("missing")
	assert.False(t, ok)

	c, ok := repo.CategoryBySlug("bags")
	require.True(t, ok)
	assert.Equal(t, "Bags", c.Name)
}

func TestCatalogRepository_QueryWithoutRedis(t *testing.T) {
	repo := newTestRepo(t)

	result := repo.Query(context.Background(), catalog.Spec{CategoryID: "shoes", SortKey: models.SortPriceHigh})

	require.Len(t, result, 2)
	assert.Equal(t, "p-002", result[0].ID)
}

func TestCatalogRepository_Facets(t *testing.T) {
	repo := newTestRepo(t)

	facets := repo.Facets(context.Background())

	assert.Equal(t, []string{"shoes", "bags"}, facets.Categories)
	require.NotNil(t, facets.PriceRange)
	assert.Equal(t, 30.0, facets.PriceRange.Min)
	assert.Equal(t, 80.0, facets.PriceRange.Max)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	raw, err := json.Marshal(testData())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	data, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Len(t, data.Products, 3)
	assert.Len(t, data.Categories, 2)
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
