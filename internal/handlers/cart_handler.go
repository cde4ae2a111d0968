package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
	"storefront-service/internal/store"
)

type CartHandler struct {
	carts  *store.CartRegistry
	repo   *repository.CatalogRepository
	logger *logrus.Logger
}

func NewCartHandler(carts *store.CartRegistry, repo *repository.CatalogRepository, logger *logrus.Logger) *CartHandler {
	return &CartHandler{carts: carts, repo: repo, logger: logger}
}

// GetCart returns the session cart with items joined to catalog products
// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.CartResponse
// @Router /storefront/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.carts.ForSession(middleware.GetSessionID(c))
	c.JSON(http.StatusOK, h.cartResponse(cart.Snapshot()))
}

// AddItem adds a product to the session cart
// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
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

	if _, ok := h.repo.ProductByID(req.ProductID); !ok {
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

	sessionID := middleware.GetSessionID(c)
	state := h.carts.ForSession(sessionID).Add(req.ProductID, req.Color, req.Size, req.Quantity)

	h.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	}).Info("Item added to cart")

	c.JSON(http.StatusOK, h.cartResponse(state))
}

// UpdateItem sets a cart line's quantity; zero removes the line
// @Summary Update cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param itemId path string true "Cart line id"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /storefront/cart/items/{itemId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
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

	cart := h.carts.ForSession(middleware.GetSessionID(c))
	state := cart.Dispatch(store.UpdateQuantity{
		ItemID:   c.Param("itemId"),
		Quantity: req.Quantity,
	})

	c.JSON(http.StatusOK, h.cartResponse(state))
}

// RemoveItem deletes a cart line
// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param itemId path string true "Cart line id"
// @Success 200 {object} models.CartResponse
// @Router /storefront/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart := h.carts.ForSession(middleware.GetSessionID(c))
	state := cart.Dispatch(store.RemoveItem{ItemID: c.Param("itemId")})
	c.JSON(http.StatusOK, h.cartResponse(state))
}

// ClearCart empties the session cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /storefront/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart := h.carts.ForSession(middleware.GetSessionID(c))
	state := cart.Dispatch(store.ClearCart{})
	c.JSON(http.StatusOK, h.cartResponse(state))
}

// cartResponse joins cart lines with catalog products and totals them.
// Lines whose product left the catalog still appear, priced at zero, so
// the client can surface them instead of silently shrinking the cart.
func (h *CartHandler) cartResponse(state store.CartState) models.CartResponse {
	items := make([]models.EnrichedCartItem, 0, len(state.Items))
	subtotal := 0.0
	for _, item := range state.Items {
		enriched := models.EnrichedCartItem{CartItem: item}
		if product, ok := h.repo.ProductByID(item.ProductID); ok {
			enriched.Product = &product
			subtotal += product.Price * float64(item.Quantity)
		}
		items = append(items, enriched)
	}
	return models.CartResponse{
		Success:   true,
		Items:     items,
		Subtotal:  subtotal,
		ItemCount: state.ItemCount(),
	}
}
