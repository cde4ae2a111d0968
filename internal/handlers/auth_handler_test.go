package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/models"
)

func TestRegister_IssuesToken(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/register", "", models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "supersecret1",
	})
	requireStatus(t, recorder, http.StatusCreated)

	var resp models.AuthResponse
	decodeBody(t, recorder, &resp)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _ := testRouter(t)

	req := models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "supersecret1",
	}
	doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/register", "", req)
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/register", "", req)
	requireStatus(t, recorder, http.StatusConflict)

	var resp models.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/register", "", models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "short",
	})
	requireStatus(t, recorder, http.StatusBadRequest)
}

func TestLogin_SeededDemoUser(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/login", "", models.LoginRequest{
		Email:    "demo@athleon.com",
		Password: "password123",
	})
	requireStatus(t, recorder, http.StatusOK)

	var resp models.AuthResponse
	decodeBody(t, recorder, &resp)
	require.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/login", "", models.LoginRequest{
		Email:    "demo@athleon.com",
		Password: "not-the-password",
	})
	requireStatus(t, recorder, http.StatusUnauthorized)

	var resp models.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/auth/login", "", models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})
	requireStatus(t, recorder, http.StatusUnauthorized)
}

func TestNewsletterSubscribe(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/newsletter", "", models.NewsletterRequest{
		Email: "Reader@Example.com",
	})
	requireStatus(t, recorder, http.StatusOK)

	// Same address again, case-insensitively, is a conflict.
	recorder = doRequest(t, router, http.MethodPost, "/api/v1/storefront/newsletter", "", models.NewsletterRequest{
		Email: "reader@example.com",
	})
	requireStatus(t, recorder, http.StatusConflict)

	var resp models.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "ALREADY_SUBSCRIBED", resp.Error.Code)
}

func TestNewsletterSubscribe_InvalidEmail(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/newsletter", "", models.NewsletterRequest{
		Email: "not-an-email",
	})
	requireStatus(t, recorder, http.StatusBadRequest)

	var resp models.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email", resp.Error.Field)
}
