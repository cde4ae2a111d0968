package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-service/internal/clients"
	"storefront-service/internal/config"
	"storefront-service/internal/events"
	"storefront-service/internal/handlers"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
	"storefront-service/internal/store"
)

// @title Storefront API
// @version 1.0.0
// @description Public storefront service: catalog browsing, cart, wishlist, reviews and checkout
// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Load the catalog: from the backend API when configured, else from the
	// local fixture file.
	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	catalogRepo, err := repository.NewCatalogRepository(catalog, redisClient, logger)
	if err != nil {
		log.Fatal("Failed to build catalog repository:", err)
	}
	log.Printf("✓ Catalog loaded (%d products, %d categories)", len(catalogRepo.Products()), len(catalogRepo.Categories()))

	reviewsRepo := repository.NewReviewsRepository()
	accountsRepo := repository.NewAccountsRepository()
	newsletterRepo := repository.NewNewsletterRepository()
	ordersRepo := repository.NewOrdersRepository()

	carts := store.NewCartRegistry()
	memoryWishlists := store.NewMemoryWishlistBackend()

	// The remote wishlist backend only exists when a backend API is wired in.
	var remoteWishlists store.WishlistBackend
	if cfg.BackendAPIURL != "" {
		remoteWishlists = clients.NewBackendClient(cfg.BackendAPIURL)
	}

	// Initialize event publisher only if NATS_URL is set
	var eventsPublisher *events.Publisher
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		eventsPublisher, err = events.NewPublisher(logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (continuing without event publishing)", err)
		} else {
			log.Println("✓ Events publisher initialized (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping event publishing initialization")
	}
	defer func() {
		if eventsPublisher != nil {
			eventsPublisher.Close()
		}
	}()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(catalogRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo, cfg.RelatedLimit)
	cartHandler := handlers.NewCartHandler(carts, catalogRepo, logger)
	wishlistHandler := handlers.NewWishlistHandler(memoryWishlists, remoteWishlists, catalogRepo, logger)
	reviewsHandler := handlers.NewReviewsHandler(reviewsRepo, catalogRepo, logger)
	authHandler := handlers.NewAuthHandler(accountsRepo, cfg.JWTSecret, cfg.JWTExpiry, logger)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterRepo, eventsPublisher, logger)
	ordersHandler := handlers.NewOrdersHandler(ordersRepo, catalogRepo, newsletterRepo, carts, eventsPublisher, logger)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public storefront API
	storefront := router.Group("/api/v1/storefront")
	storefront.Use(middleware.SessionMiddleware())
	storefront.Use(middleware.OptionalAuth(cfg.JWTSecret))
	{
		// Catalog browsing
		storefront.GET("/products", catalogHandler.GetProducts)
		storefront.GET("/products/:slug", catalogHandler.GetProduct)
		storefront.GET("/collections/:slug", catalogHandler.GetCollection)
		storefront.GET("/categories", catalogHandler.GetCategories)
		storefront.GET("/facets", catalogHandler.GetFacets)

		// Session cart
		storefront.GET("/cart", cartHandler.GetCart)
		storefront.DELETE("/cart", cartHandler.ClearCart)
		storefront.POST("/cart/items", cartHandler.AddItem)
		storefront.PUT("/cart/items/:itemId", cartHandler.UpdateItem)
		storefront.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)

		// Wishlist
		storefront.GET("/wishlist", wishlistHandler.GetWishlist)
		storefront.DELETE("/wishlist", wishlistHandler.ClearWishlist)
		storefront.POST("/wishlist/items", wishlistHandler.AddItem)
		storefront.DELETE("/wishlist/items/:productId", wishlistHandler.RemoveItem)

		// Reviews. The product segment reuses :slug to share the route
		// tree with the detail endpoint; handlers accept a slug or an id.
		storefront.GET("/products/:slug/reviews", reviewsHandler.ListReviews)
		storefront.POST("/products/:slug/reviews", reviewsHandler.CreateReview)
		storefront.GET("/products/:slug/reviews/stats", reviewsHandler.GetReviewStats)
		storefront.POST("/reviews/:reviewId/helpful", reviewsHandler.UpvoteReview)
		storefront.DELETE("/reviews/:reviewId", reviewsHandler.DeleteReview)

		// Accounts
		storefront.POST("/auth/register", authHandler.Register)
		storefront.POST("/auth/login", authHandler.Login)

		// Newsletter
		storefront.POST("/newsletter", newsletterHandler.Subscribe)

		// Checkout
		storefront.POST("/checkout", ordersHandler.Checkout)
		storefront.GET("/orders/:orderId", ordersHandler.GetOrder)
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Storefront service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	log.Println("Shutting down storefront-service...")
	log.Println("Storefront service stopped")
}

func loadCatalog(cfg *config.Config) (*models.Catalog, error) {
	if cfg.BackendAPIURL != "" {
		var source repository.CatalogSource = clients.NewBackendClient(cfg.BackendAPIURL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return source.FetchCatalog(ctx)
	}
	return repository.LoadCatalogFile(cfg.CatalogFile)
}
