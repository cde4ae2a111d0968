package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront-service/internal/models"
)

var (
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

// AccountsRepository is the in-memory user store. A demo account is seeded
// so the storefront works out of the box.
type AccountsRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewAccountsRepository() *AccountsRepository {
	repo := &AccountsRepository{byEmail: make(map[string]models.User)}

	// Demo user, password "password123".
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.byEmail["demo@athleon.com"] = models.User{
		ID:           uuid.New().String(),
		Email:        "demo@athleon.com",
		FirstName:    "Demo",
		LastName:     "User",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return repo
}

// Register creates an account, hashing the password with bcrypt.
func (r *AccountsRepository) Register(req models.RegisterRequest) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[email] = user
	return user, nil
}

// Authenticate checks credentials and returns the matching user.
func (r *AccountsRepository) Authenticate(email, password string) (models.User, error) {
	r.mu.RLock()
	user, exists := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()

	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// NewsletterRepository tracks newsletter subscriptions.
type NewsletterRepository struct {
	mu          sync.Mutex
	subscribers map[string]bool
}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{subscribers: make(map[string]bool)}
}

// Subscribe records an email. Returns false when already subscribed.
func (r *NewsletterRepository) Subscribe(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.subscribers[email] {
		return false
	}
	r.subscribers[email] = true
	return true
}
