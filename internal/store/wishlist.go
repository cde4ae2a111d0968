package store

import (
	"context"
	"sync"

	"storefront-service/internal/models"
)

// WishlistBackend persists wishlist items for an owner (a session id for
// guests, an account id once signed in). The store is agnostic to which
// backend is active; the caller picks one at construction time.
type WishlistBackend interface {
	Load(ctx context.Context, ownerID string) ([]models.WishlistItem, error)
	Save(ctx context.Context, ownerID string, items []models.WishlistItem) error
}

// MemoryWishlistBackend keeps wishlists in process memory, standing in for
// the guest local-storage mode.
type MemoryWishlistBackend struct {
	mu    sync.RWMutex
	lists map[string][]models.WishlistItem
}

func NewMemoryWishlistBackend() *MemoryWishlistBackend {
	return &MemoryWishlistBackend{lists: make(map[string][]models.WishlistItem)}
}

func (b *MemoryWishlistBackend) Load(_ context.Context, ownerID string) ([]models.WishlistItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	items := make([]models.WishlistItem, len(b.lists[ownerID]))
	copy(items, b.lists[ownerID])
	return items, nil
}

func (b *MemoryWishlistBackend) Save(_ context.Context, ownerID string, items []models.WishlistItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]models.WishlistItem, len(items))
	copy(stored, items)
	b.lists[ownerID] = stored
	return nil
}

// WishlistStore manages one owner's wishlist through a backend.
type WishlistStore struct {
	backend WishlistBackend
	ownerID string
}

func NewWishlistStore(backend WishlistBackend, ownerID string) *WishlistStore {
	return &WishlistStore{backend: backend, ownerID: ownerID}
}

// Items returns the wishlist contents in added order.
func (s *WishlistStore) Items(ctx context.Context) ([]models.WishlistItem, error) {
	return s.backend.Load(ctx, s.ownerID)
}

// Add saves the item unless the product is already wishlisted. Returns true
// when the item was added.
func (s *WishlistStore) Add(ctx context.Context, item models.WishlistItem) (bool, error) {
	items, err := s.backend.Load(ctx, s.ownerID)
	if err != nil {
		return false, err
	}
	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			return false, nil
		}
	}
	return true, s.backend.Save(ctx, s.ownerID, append(items, item))
}

// Remove drops the product from the wishlist. Returns true when it was present.
func (s *WishlistStore) Remove(ctx context.Context, productID string) (bool, error) {
	items, err := s.backend.Load(ctx, s.ownerID)
	if err != nil {
		return false, err
	}
	kept := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, s.backend.Save(ctx, s.ownerID, kept)
}

// Contains reports whether the product is wishlisted.
func (s *WishlistStore) Contains(ctx context.Context, productID string) (bool, error) {
	items, err := s.backend.Load(ctx, s.ownerID)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear(ctx context.Context) error {
	return s.backend.Save(ctx, s.ownerID, []models.WishlistItem{})
}
