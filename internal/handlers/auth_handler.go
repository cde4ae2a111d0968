package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

type AuthHandler struct {
	accounts  *repository.AccountsRepository
	jwtSecret string
	jwtExpiry time.Duration
	logger    *logrus.Logger
}

func NewAuthHandler(accounts *repository.AccountsRepository, jwtSecret string, jwtExpiry time.Duration, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		logger:    logger,
	}
}

// Register creates an account and signs the user in
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /storefront/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
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

	user, err := h.accounts.Register(req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "EMAIL_TAKEN",
					Message: "An account with this email already exists",
					Field:   "email",
				},
			})
			return
		}
		h.logger.WithError(err).Error("Failed to register user")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "REGISTRATION_FAILED",
				Message: "Failed to create account",
			},
		})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "TOKEN_FAILED",
				Message: "Failed to issue token",
			},
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	c.JSON(http.StatusCreated, models.AuthResponse{
		Success: true,
		User:    user,
		Token:   token,
	})
}

// Login authenticates an account and issues a JWT
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /storefront/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
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

	user, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_CREDENTIALS",
				Message: "Email or password is incorrect",
			},
		})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "TOKEN_FAILED",
				Message: "Failed to issue token",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Success: true,
		User:    user,
		Token:   token,
	})
}

func (h *AuthHandler) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
