package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Catalog source: a local JSON fixture, or a remote backend when
	// BackendAPIURL is set (the remote wins).
	CatalogFile   string
	BackendAPIURL string

	// Redis
	RedisURL string

	// Auth
	JWTSecret string
	JWTExpiry time.Duration

	// Pagination
	DefaultPageSize int
	MaxPageSize     int

	// Related products shown on a product page
	RelatedLimit int
}

func Load() *Config {
	defaultPageSize, _ := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "10"))
	maxPageSize, _ := strconv.Atoi(getEnv("MAX_PAGE_SIZE", "100"))
	relatedLimit, _ := strconv.Atoi(getEnv("RELATED_LIMIT", "4"))

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		CatalogFile:   getEnv("CATALOG_FILE", "data/products.json"),
		BackendAPIURL: getEnv("BACKEND_API_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry: jwtExpiry,

		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		RelatedLimit:    relatedLimit,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
