package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/catalog"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

// Gender collection slugs recognized by the collections route.
var genderCollections = map[string]bool{
	"men":   true,
	"women": true,
}

type CatalogHandler struct {
	repo         *repository.CatalogRepository
	relatedLimit int
}

func NewCatalogHandler(repo *repository.CatalogRepository, relatedLimit int) *CatalogHandler {
	return &CatalogHandler{repo: repo, relatedLimit: relatedLimit}
}

// GetProducts lists products filtered by query parameters
// @Summary List products
// @Description Filters and sorts the catalog; filters metadata always reflects the full catalog
// @Tags storefront
// @Produce json
// @Param category query string false "Category slug or id, 'all' for no filter"
// @Param search query string false "Free-text search term"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param colors query string false "Comma-separated color labels"
// @Param sizes query string false "Comma-separated size labels"
// @Param sort query string false "featured|newest|price-low|price-high|name"
// @Success 200 {object} models.ProductListResponse
// @Router /storefront/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	spec := h.specFromQuery(c)

	products := h.repo.Query(c.Request.Context(), spec)
	facets := h.repo.Facets(c.Request.Context())

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    products,
		Total:   len(products),
		Filters: &facets,
	})
}

// specFromQuery normalizes loose query parameters into an engine spec.
// Malformed numbers are dropped, never rejected: a broken filter control
// must not blank the page.
func (h *CatalogHandler) specFromQuery(c *gin.Context) catalog.Spec {
	spec := catalog.Spec{
		Search:  c.Query("search"),
		SortKey: models.SortKey(c.Query("sort")),
	}

	if category := c.Query("category"); category != "" && category != "all" {
		spec.CategoryID = h.resolveCategoryID(category)
	}

	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			spec.MinPrice = &v
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			spec.MaxPrice = &v
		}
	}

	if colors := c.Query("colors"); colors != "" {
		spec.SelectedColors = strings.Split(colors, ",")
	}
	if sizes := c.Query("sizes"); sizes != "" {
		spec.SelectedSizes = strings.Split(sizes, ",")
	}
	return spec
}

// resolveCategoryID maps a category slug to its id, passing unknown values
// through unchanged so callers holding raw ids still work.
func (h *CatalogHandler) resolveCategoryID(slugOrID string) string {
	if cat, ok := h.repo.CategoryBySlug(slugOrID); ok {
		return cat.ID
	}
	return slugOrID
}

// GetProduct returns one product by slug with its related products
// @Summary Get product detail
// @Tags storefront
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ProductDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, ok := h.repo.ProductBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductDetailResponse{
		Success: true,
		Data: models.ProductDetail{
			Product:         product,
			RelatedProducts: h.repo.Related(product, h.relatedLimit),
		},
	})
}

// GetCollection lists products for a collection slug. "men" and "women"
// are gender collections matching the product gender or unisex; any other
// slug resolves to a category. Unknown slugs return the whole catalog, as
// collection routes never hard-fail in the storefront.
func (h *CatalogHandler) GetCollection(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))
	spec := catalog.Spec{
		SortKey:        models.SortKey(c.Query("sort")),
		SelectedColors: splitParam(c.Query("colors")),
		SelectedSizes:  splitParam(c.Query("sizes")),
	}

	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			spec.MinPrice = &v
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			spec.MaxPrice = &v
		}
	}

	var collectionName string
	if genderCollections[slug] {
		spec.IsGenderCollection = true
		spec.CollectionSlug = slug
		collectionName = titleCase(slug)
	} else if cat, ok := h.repo.CategoryBySlug(slug); ok {
		spec.CategoryID = cat.ID
		collectionName = cat.Name
	} else {
		collectionName = titleCase(slug)
	}

	products := h.repo.Query(c.Request.Context(), spec)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"collection": collectionName,
		"data":       products,
		"total":      len(products),
	})
}

// GetCategories lists all catalog categories
// @Summary List categories
// @Tags storefront
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Router /storefront/categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoryListResponse{
		Success: true,
		Data:    h.repo.Categories(),
	})
}

// GetFacets returns the catalog-wide filter options
// @Summary Get facet summary
// @Tags storefront
// @Produce json
// @Success 200 {object} models.FacetsResponse
// @Router /storefront/facets [get]
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, models.FacetsResponse{
		Success: true,
		Data:    h.repo.Facets(c.Request.Context()),
	})
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
