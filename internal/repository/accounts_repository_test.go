package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/models"
)

func TestAccountsRegisterAndAuthenticate(t *testing.T) {
	repo := NewAccountsRepository()

	user, err := repo.Register(models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "Ada@Example.com", Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)

	// Email lookup is case-insensitive.
	authed, err := repo.Authenticate("ADA@example.com", "supersecret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestAccountsRegister_DuplicateEmail(t *testing.T) {
	repo := NewAccountsRepository()

	req := models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "supersecret1",
	}
	_, err := repo.Register(req)
	require.NoError(t, err)

	_, err = repo.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAccountsAuthenticate_Failures(t *testing.T) {
	repo := NewAccountsRepository()

	_, err := repo.Authenticate("demo@athleon.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountsSeededDemoUser(t *testing.T) {
	repo := NewAccountsRepository()

	user, err := repo.Authenticate("demo@athleon.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Demo", user.FirstName)
}

func TestNewsletterSubscribe(t *testing.T) {
	repo := NewNewsletterRepository()

	assert.True(t, repo.Subscribe("reader@example.com"))
	assert.False(t, repo.Subscribe("reader@example.com"))
	assert.True(t, repo.Subscribe("other@example.com"))
}
