package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
	"storefront-service/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func floatPtr(v float64) *float64 { return &v }

func testCatalogData() *models.Catalog {
	return &models.Catalog{
		Products: []models.Product{
			{
				ID: "p-001", Slug: "air-max-pro", Title: "Air Max Pro Running Shoes",
				Description: "Lightweight running shoes", Price: 129.99,
				CompareAtPrice: floatPtr(159.99), Category: "cat-shoes", Gender: models.GenderMen,
				Colors: []string{"Black", "White"}, Sizes: []string{"9", "10"},
				Images: []string{"/images/air-max-pro.jpg"}, Inventory: 10,
			},
			{
				ID: "p-002", Slug: "flow-leggings", Title: "Flow Leggings",
				Description: "Seamless leggings", Price: 64.99,
				Category: "cat-apparel", Gender: models.GenderWomen,
				Colors: []string{"Black", "Sage"}, Sizes: []string{"S", "M"},
				Images: []string{"/images/flow-leggings.jpg"}, Inventory: 20,
			},
			{
				ID: "p-003", Slug: "hydra-bottle", Title: "Hydra Bottle",
				Description: "Insulated bottle", Price: 29.99,
				Category: "cat-accessories", Gender: models.GenderUnisex,
				Colors: []string{"Steel"}, Sizes: []string{"One Size"},
				Images: []string{"/images/hydra-bottle.jpg"}, Inventory: 30,
			},
			{
				ID: "p-004", Slug: "court-classic", Title: "Court Classic",
				Description: "Heritage court sneaker", Price: 89.99,
				Category: "cat-shoes", Gender: models.GenderUnisex,
				Colors: []string{"White"}, Sizes: []string{"9", "10", "11"},
				Images: []string{"/images/court-classic.jpg"}, Inventory: 15,
			},
		},
		Categories: []models.Category{
			{ID: "cat-shoes", Name: "Shoes", Slug: "shoes"},
			{ID: "cat-apparel", Name: "Apparel", Slug: "apparel"},
			{ID: "cat-accessories", Name: "Accessories", Slug: "accessories"},
		},
	}
}

func testCatalogRepo(t *testing.T) *repository.CatalogRepository {
	t.Helper()
	repo, err := repository.NewCatalogRepository(testCatalogData(), nil, testLogger())
	require.NoError(t, err)
	return repo
}

// testRouter wires the full storefront route tree against in-memory state.
func testRouter(t *testing.T) (*gin.Engine, *store.CartRegistry) {
	t.Helper()

	logger := testLogger()
	catalogRepo := testCatalogRepo(t)
	reviewsRepo := repository.NewReviewsRepository()
	accountsRepo := repository.NewAccountsRepository()
	newsletterRepo := repository.NewNewsletterRepository()
	ordersRepo := repository.NewOrdersRepository()
	carts := store.NewCartRegistry()
	wishlists := store.NewMemoryWishlistBackend()

	catalogHandler := NewCatalogHandler(catalogRepo, 4)
	cartHandler := NewCartHandler(carts, catalogRepo, logger)
	wishlistHandler := NewWishlistHandler(wishlists, nil, catalogRepo, logger)
	reviewsHandler := NewReviewsHandler(reviewsRepo, catalogRepo, logger)
	authHandler := NewAuthHandler(accountsRepo, "test-secret", time.Hour, logger)
	newsletterHandler := NewNewsletterHandler(newsletterRepo, nil, logger)
	ordersHandler := NewOrdersHandler(ordersRepo, catalogRepo, newsletterRepo, carts, nil, logger)

	router := gin.New()
	api := router.Group("/api/v1/storefront")
	api.Use(middleware.SessionMiddleware())
	api.Use(middleware.OptionalAuth("test-secret"))
	{
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/products/:slug", catalogHandler.GetProduct)
		api.GET("/collections/:slug", catalogHandler.GetCollection)
		api.GET("/categories", catalogHandler.GetCategories)
		api.GET("/facets", catalogHandler.GetFacets)

		api.GET("/cart", cartHandler.GetCart)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PUT("/cart/items/:itemId", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)

		api.GET("/wishlist", wishlistHandler.GetWishlist)
		api.DELETE("/wishlist", wishlistHandler.ClearWishlist)
		api.POST("/wishlist/items", wishlistHandler.AddItem)
		api.DELETE("/wishlist/items/:productId", wishlistHandler.RemoveItem)

		api.GET("/products/:slug/reviews", reviewsHandler.ListReviews)
		api.POST("/products/:slug/reviews", reviewsHandler.CreateReview)
		api.GET("/products/:slug/reviews/stats", reviewsHandler.GetReviewStats)
		api.POST("/reviews/:reviewId/helpful", reviewsHandler.UpvoteReview)
		api.DELETE("/reviews/:reviewId", reviewsHandler.DeleteReview)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.POST("/newsletter", newsletterHandler.Subscribe)

		api.POST("/checkout", ordersHandler.Checkout)
		api.GET("/orders/:orderId", ordersHandler.GetOrder)
	}

	return router, carts
}

func doRequest(t *testing.T, router *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code, "body: %s", recorder.Body.String())
}
