package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/events"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
	"storefront-service/internal/store"
)

type OrdersHandler struct {
	orders     *repository.OrdersRepository
	catalog    *repository.CatalogRepository
	newsletter *repository.NewsletterRepository
	carts      *store.CartRegistry
	publisher  *events.Publisher
	logger     *logrus.Logger
}

func NewOrdersHandler(
	orders *repository.OrdersRepository,
	catalog *repository.CatalogRepository,
	newsletter *repository.NewsletterRepository,
	carts *store.CartRegistry,
	publisher *events.Publisher,
	logger *logrus.Logger,
) *OrdersHandler {
	return &OrdersHandler{
		orders:     orders,
		catalog:    catalog,
		newsletter: newsletter,
		carts:      carts,
		publisher:  publisher,
		logger:     logger,
	}
}

// Checkout turns the session cart into an order
// @Summary Checkout
// @Tags orders
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout form"
// @Success 201 {object} models.OrderResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /storefront/checkout [post]
func (h *OrdersHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
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

	sessionID := middleware.GetSessionID(c)
	cart := h.carts.ForSession(sessionID)
	state := cart.Snapshot()
	if len(state.Items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EMPTY_CART",
				Message: "Cannot check out an empty cart",
			},
		})
		return
	}

	items := make([]models.OrderItem, 0, len(state.Items))
	subtotal := 0.0
	for _, line := range state.Items {
		product, ok := h.catalog.ProductByID(line.ProductID)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "PRODUCT_UNAVAILABLE",
					Message: "A cart item is no longer available",
					Field:   line.ProductID,
				},
			})
			return
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	order := models.Order{
		ID:          uuid.New().String(),
		OrderNumber: h.orders.NextOrderNumber(),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Shipping: models.Address{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			Apartment: req.Apartment,
			City:      req.City,
			State:     req.State,
			Zip:       req.Zip,
		},
		Billing:       billingAddress(req),
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Subtotal:      subtotal,
		Status:        models.OrderStatusPending,
		Newsletter:    req.Newsletter,
		CreatedAt:     time.Now().UTC(),
	}

	h.orders.Save(order)
	cart.Dispatch(store.ClearCart{})
	h.carts.Drop(sessionID)

	if req.Newsletter {
		if h.newsletter.Subscribe(req.Email) {
			if err := h.publisher.PublishNewsletterSubscribed(c.Request.Context(), req.Email); err != nil {
				h.logger.WithError(err).Warn("Failed to publish newsletter event")
			}
		}
	}

	if err := h.publisher.PublishOrderCreated(c.Request.Context(), &order, sessionID); err != nil {
		h.logger.WithError(err).Warn("Failed to publish order event")
	}

	h.logger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"items":        len(order.Items),
		"subtotal":     order.Subtotal,
	}).Info("Order created")

	c.JSON(http.StatusCreated, models.OrderResponse{
		Success: true,
		Data:    &order,
	})
}

// GetOrder returns an order by id for the confirmation page
// @Summary Get order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order id"
// @Success 200 {object} models.OrderResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/orders/{orderId} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	order, ok := h.orders.ByID(c.Param("orderId"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Order not found",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.OrderResponse{
		Success: true,
		Data:    &order,
	})
}

// billingAddress returns the billing address when the form filled one in,
// nil to fall back to shipping.
func billingAddress(req models.CheckoutRequest) *models.Address {
	if req.BillingAddress == "" {
		return nil
	}
	return &models.Address{
		FirstName: req.BillingFirstName,
		LastName:  req.BillingLastName,
		Address:   req.BillingAddress,
		City:      req.BillingCity,
		State:     req.BillingState,
		Zip:       req.BillingZip,
	}
}
