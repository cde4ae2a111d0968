package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

type ReviewsHandler struct {
	reviews *repository.ReviewsRepository
	catalog *repository.CatalogRepository
	logger  *logrus.Logger
}

func NewReviewsHandler(reviews *repository.ReviewsRepository, catalog *repository.CatalogRepository, logger *logrus.Logger) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews, catalog: catalog, logger: logger}
}

// resolveProductID accepts a product slug or id in the path and returns the
// canonical product id.
func (h *ReviewsHandler) resolveProductID(c *gin.Context) (string, bool) {
	value := c.Param("slug")
	if product, ok := h.catalog.ProductBySlug(value); ok {
		return product.ID, true
	}
	if _, ok := h.catalog.ProductByID(value); ok {
		return value, true
	}
	return "", false
}

// ListReviews returns a page of approved reviews for a product
// @Summary List product reviews
// @Tags reviews
// @Produce json
// @Param slug path string true "Product slug or id"
// @Param sort query string false "newest|helpful|highest|lowest"
// @Param page query int false "Page number, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ReviewListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{slug}/reviews [get]
func (h *ReviewsHandler) ListReviews(c *gin.Context) {
	productID, ok := h.resolveProductID(c)
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

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 50 {
		limit = 5
	}
	sortKey := c.DefaultQuery("sort", "newest")

	reviews, total := h.reviews.ListByProduct(productID, sortKey, page, limit)

	c.JSON(http.StatusOK, models.ReviewListResponse{
		Success: true,
		Reviews: reviews,
		Total:   total,
		HasMore: page*limit < total,
		Page:    page,
		Limit:   limit,
	})
}

// CreateReview submits a review, which stays hidden until moderated
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param slug path string true "Product slug or id"
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.ReviewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{slug}/reviews [post]
func (h *ReviewsHandler) CreateReview(c *gin.Context) {
	productID, ok := h.resolveProductID(c)
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

	var req models.CreateReviewRequest
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

	userID := middleware.GetUserID(c)
	userName := c.GetString("user_email")
	if userID == "" {
		userID = middleware.GetSessionID(c)
		userName = "Anonymous"
	}

	review := h.reviews.Create(productID, userID, userName, req)

	h.logger.WithFields(logrus.Fields{
		"review_id":  review.ID,
		"product_id": productID,
		"rating":     review.Rating,
	}).Info("Review submitted")

	message := "Review submitted and pending approval"
	c.JSON(http.StatusCreated, models.ReviewResponse{
		Success: true,
		Review:  &review,
		Message: &message,
	})
}

// UpvoteReview increments a review's helpful count
// @Summary Mark review helpful
// @Tags reviews
// @Produce json
// @Param reviewId path string true "Review id"
// @Success 200 {object} models.ReviewResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/reviews/{reviewId}/helpful [post]
func (h *ReviewsHandler) UpvoteReview(c *gin.Context) {
	review, err := h.reviews.Upvote(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Review not found",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.ReviewResponse{
		Success: true,
		Review:  &review,
	})
}

// DeleteReview removes the caller's own review
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param reviewId path string true "Review id"
// @Success 200 {object} models.ReviewResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/reviews/{reviewId} [delete]
func (h *ReviewsHandler) DeleteReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		userID = middleware.GetSessionID(c)
	}

	err := h.reviews.Delete(c.Param("reviewId"), userID)
	if err != nil {
		status := http.StatusNotFound
		code := "NOT_FOUND"
		if errors.Is(err, repository.ErrNotReviewAuthor) {
			status = http.StatusForbidden
			code = "FORBIDDEN"
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	message := "Review deleted"
	c.JSON(http.StatusOK, models.ReviewResponse{
		Success: true,
		Message: &message,
	})
}

// GetReviewStats returns aggregate rating data for a product
// @Summary Get review stats
// @Tags reviews
// @Produce json
// @Param slug path string true "Product slug or id"
// @Success 200 {object} models.ReviewStatsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{slug}/reviews/stats [get]
func (h *ReviewsHandler) GetReviewStats(c *gin.Context) {
	productID, ok := h.resolveProductID(c)
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
	c.JSON(http.StatusOK, models.ReviewStatsResponse{
		Success: true,
		Data:    h.reviews.Stats(productID),
	})
}
