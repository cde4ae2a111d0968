package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/events"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type NewsletterHandler struct {
	newsletter *repository.NewsletterRepository
	publisher  *events.Publisher
	logger     *logrus.Logger
}

func NewNewsletterHandler(newsletter *repository.NewsletterRepository, publisher *events.Publisher, logger *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, publisher: publisher, logger: logger}
}

// Subscribe adds an email to the newsletter list
// @Summary Subscribe to newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Email"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /storefront/newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
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

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "A valid email address is required",
				Field:   "email",
			},
		})
		return
	}

	if !h.newsletter.Subscribe(email) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "ALREADY_SUBSCRIBED",
				Message: "This email is already subscribed",
				Field:   "email",
			},
		})
		return
	}

	if err := h.publisher.PublishNewsletterSubscribed(c.Request.Context(), email); err != nil {
		h.logger.WithError(err).Warn("Failed to publish newsletter event")
	}

	h.logger.WithField("email", email).Info("Newsletter subscription added")

	message := "Subscribed to newsletter"
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: &message,
	})
}
