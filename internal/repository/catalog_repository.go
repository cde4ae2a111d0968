package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/catalog"
	"storefront-service/internal/models"
)

// Cache TTL constants
const (
	QueryCacheTTL  = 2 * time.Minute  // filtered/sorted result lists
	FacetsCacheTTL = 30 * time.Minute // facet options change only on reload
)

// CatalogSource supplies the catalog at startup. Implemented by the fixture
// loader below and by clients.BackendClient for the remote mode.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) (*models.Catalog, error)
}

// CatalogRepository holds the immutable catalog snapshot and answers
// queries through the engine, with an optional redis result cache in front.
type CatalogRepository struct {
	products   []models.Product
	categories []models.Category

	bySlug     map[string]models.Product
	byID       map[string]models.Product
	catBySlug  map[string]models.Category

	redis  *redis.Client
	logger *logrus.Entry
}

// NewCatalogRepository builds the repository from an already-loaded catalog.
// Duplicate product slugs are a data error: the whole load is rejected
// rather than serving a catalog that routes ambiguously.
func NewCatalogRepository(data *models.Catalog, redisClient *redis.Client, logger *logrus.Logger) (*CatalogRepository, error) {
	repo := &CatalogRepository{
		products:   data.Products,
		categories: data.Categories,
		bySlug:     make(map[string]models.Product, len(data.Products)),
		byID:       make(map[string]models.Product, len(data.Products)),
		catBySlug:  make(map[string]models.Category, len(data.Categories)),
		redis:      redisClient,
		logger:     logger.WithField("component", "catalog-repository"),
	}

	for _, p := range data.Products {
		if _, dup := repo.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		repo.bySlug[p.Slug] = p
		repo.byID[p.ID] = p
	}
	for _, c := range data.Categories {
		repo.catBySlug[c.Slug] = c
	}

	return repo, nil
}

// LoadCatalogFile reads the static catalog fixture.
func LoadCatalogFile(path string) (*models.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var data models.Catalog
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return &data, nil
}

// Products returns the full catalog in merchandised order. Callers must not
// mutate the returned slice's elements.
func (r *CatalogRepository) Products() []models.Product {
	return r.products
}

// Categories returns all catalog categories.
func (r *CatalogRepository) Categories() []models.Category {
	return r.categories
}

// ProductBySlug looks up one product by its URL slug.
func (r *CatalogRepository) ProductBySlug(slug string) (models.Product, bool) {
	p, ok := r.bySlug[slug]
	return p, ok
}

// ProductByID looks up one product by id.
func (r *CatalogRepository) ProductByID(id string) (models.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// CategoryBySlug resolves a collection slug to its category.
func (r *CatalogRepository) CategoryBySlug(slug string) (models.Category, bool) {
	c, ok := r.catBySlug[slug]
	return c, ok
}

// Query runs the engine over the catalog, serving repeated specs from redis
// when available. Cache failures degrade to a direct engine call.
func (r *CatalogRepository) Query(ctx context.Context, spec catalog.Spec) []models.Product {
	if r.redis == nil {
		return catalog.Query(r.products, spec)
	}

	cacheKey := queryCacheKey(spec)
	if val, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached
		}
	}

	result := catalog.Query(r.products, spec)
	if data, err := json.Marshal(result); err == nil {
		if err := r.redis.Set(ctx, cacheKey, data, QueryCacheTTL).Err(); err != nil {
			r.logger.WithError(err).Debug("Failed to cache query result")
		}
	}
	return result
}

// Facets computes the catalog-wide facet summary, cached under a fixed key
// since the catalog is immutable for the process lifetime.
func (r *CatalogRepository) Facets(ctx context.Context) models.FacetSummary {
	const cacheKey = "storefront:catalog:facets"

	if r.redis != nil {
		if val, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.FacetSummary
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached
			}
		}
	}

	facets := catalog.ComputeFacets(r.products)
	if r.redis != nil {
		if data, err := json.Marshal(facets); err == nil {
			if err := r.redis.Set(ctx, cacheKey, data, FacetsCacheTTL).Err(); err != nil {
				r.logger.WithError(err).Debug("Failed to cache facets")
			}
		}
	}
	return facets
}

// Related returns up to limit same-category companions for a product.
func (r *CatalogRepository) Related(product models.Product, limit int) []models.Product {
	return catalog.RelatedProducts(r.products, product, limit)
}

// queryCacheKey builds a deterministic cache key from the spec contents.
func queryCacheKey(spec catalog.Spec) string {
	data, _ := json.Marshal(spec)
	hash := md5.Sum(data)
	return fmt.Sprintf("storefront:catalog:query:%s", hex.EncodeToString(hash[:]))
}
