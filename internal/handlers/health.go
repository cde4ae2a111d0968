package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/repository"
)

type HealthHandler struct {
	repo      *repository.CatalogRepository
	startedAt time.Time
}

func NewHealthHandler(repo *repository.CatalogRepository) *HealthHandler {
	return &HealthHandler{repo: repo, startedAt: time.Now()}
}

// Health returns service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-service",
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// Ready reports whether the catalog has been loaded.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.repo == nil || len(h.repo.Products()) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "catalog not loaded",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"products": len(h.repo.Products()),
	})
}
