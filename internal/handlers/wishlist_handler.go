package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
	"storefront-service/internal/store"
)

// WishlistHandler serves the saved-items list. Guests get the in-memory
// backend keyed by session id; signed-in users get the remote backend keyed
// by account id, mirroring the local-versus-server storage split.
type WishlistHandler struct {
	memory *store.MemoryWishlistBackend
	remote store.WishlistBackend
	repo   *repository.CatalogRepository
	logger *logrus.Logger
}

func NewWishlistHandler(memory *store.MemoryWishlistBackend, remote store.WishlistBackend, repo *repository.CatalogRepository, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{memory: memory, remote: remote, repo: repo, logger: logger}
}

// storeFor picks the backend and owner for the request.
func (h *WishlistHandler) storeFor(c *gin.Context) *store.WishlistStore {
	if userID := middleware.GetUserID(c); userID != "" && h.remote != nil {
		return store.NewWishlistStore(h.remote, userID)
	}
	return store.NewWishlistStore(h.memory, middleware.GetSessionID(c))
}

// GetWishlist lists saved items
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.WishlistResponse
// @Router /storefront/wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items, err := h.storeFor(c).Items(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load wishlist")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to load wishlist",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.WishlistResponse{
		Success: true,
		Items:   items,
		Count:   len(items),
	})
}

// AddItem saves a product to the wishlist
// @Summary Add wishlist item
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body models.AddWishlistItemRequest true "Product to save"
// @Success 200 {object} models.WishlistResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/wishlist/items [post]
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	product, ok := h.repo.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Product not found",
				Field:   "productId",
			},
		})
		return
	}

	wishlist := h.storeFor(c)
	added, err := wishlist.Add(c.Request.Context(), models.WishlistItem{
		ProductID:      product.ID,
		Title:          product.Title,
		Slug:           product.Slug,
		Price:          product.Price,
		CompareAtPrice: product.CompareAtPrice,
		Image:          product.PrimaryImage(),
		Category:       product.Category,
		AddedAt:        time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to save wishlist")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "SAVE_FAILED",
				Message: "Failed to save wishlist",
			},
		})
		return
	}
	if !added {
		h.logger.WithField("product_id", req.ProductID).Debug("Product already wishlisted")
	}

	items, _ := wishlist.Items(c.Request.Context())
	c.JSON(http.StatusOK, models.WishlistResponse{
		Success: true,
		Items:   items,
		Count:   len(items),
	})
}

// RemoveItem drops a product from the wishlist
// @Summary Remove wishlist item
// @Tags wishlist
// @Produce json
// @Param productId path string true "Product id"
// @Success 200 {object} models.WishlistResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/wishlist/items/{productId} [delete]
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	wishlist := h.storeFor(c)
	removed, err := wishlist.Remove(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to save wishlist")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "SAVE_FAILED",
				Message: "Failed to save wishlist",
			},
		})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Product is not in the wishlist",
			},
		})
		return
	}

	items, _ := wishlist.Items(c.Request.Context())
	c.JSON(http.StatusOK, models.WishlistResponse{
		Success: true,
		Items:   items,
		Count:   len(items),
	})
}

// ClearWishlist removes all saved items
// @Summary Clear wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.WishlistResponse
// @Router /storefront/wishlist [delete]
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	if err := h.storeFor(c).Clear(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("Failed to clear wishlist")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "SAVE_FAILED",
				Message: "Failed to clear wishlist",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.WishlistResponse{
		Success: true,
		Items:   []models.WishlistItem{},
		Count:   0,
	})
}
