// Package store holds the client-state containers: the session cart and the
// wishlist. Both follow the same shape: a discriminated action type, a pure
// transition function, and a thin container guarding the state with a lock.
// Containers are injected by the caller, never ambient globals.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-service/internal/models"
)

// CartState is the cart contents. Treated as immutable: reduce returns a
// fresh state and never touches its input.
type CartState struct {
	Items []models.CartItem
}

// CartAction is the discriminated union of cart transitions.
type CartAction interface {
	isCartAction()
}

// AddItem appends an item, merging quantity into an existing line with the
// same (product, color, size) triple.
type AddItem struct {
	Item models.CartItem
}

// RemoveItem drops the line with the given item id.
type RemoveItem struct {
	ItemID string
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
type UpdateQuantity struct {
	ItemID   string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

// LoadCart replaces the cart contents wholesale (restore from persistence).
type LoadCart struct {
	Items []models.CartItem
}

func (AddItem) isCartAction()        {}
func (RemoveItem) isCartAction()     {}
func (UpdateQuantity) isCartAction() {}
func (ClearCart) isCartAction()      {}
func (LoadCart) isCartAction()       {}

// reduceCart is the pure cart transition function.
func reduceCart(state CartState, action CartAction) CartState {
	switch a := action.(type) {
	case AddItem:
		items := make([]models.CartItem, len(state.Items))
		copy(items, state.Items)
		for i, item := range items {
			if item.ProductID == a.Item.ProductID && item.Color == a.Item.Color && item.Size == a.Item.Size {
				items[i].Quantity += a.Item.Quantity
				return CartState{Items: items}
			}
		}
		return CartState{Items: append(items, a.Item)}

	case RemoveItem:
		items := make([]models.CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ItemID {
				items = append(items, item)
			}
		}
		return CartState{Items: items}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return reduceCart(state, RemoveItem{ItemID: a.ItemID})
		}
		items := make([]models.CartItem, len(state.Items))
		copy(items, state.Items)
		for i, item := range items {
			if item.ID == a.ItemID {
				items[i].Quantity = a.Quantity
			}
		}
		return CartState{Items: items}

	case ClearCart:
		return CartState{Items: []models.CartItem{}}

	case LoadCart:
		items := make([]models.CartItem, len(a.Items))
		copy(items, a.Items)
		return CartState{Items: items}

	default:
		return state
	}
}

// CartStore is a concurrency-safe cart container around reduceCart.
type CartStore struct {
	mu    sync.RWMutex
	state CartState
}

func NewCartStore() *CartStore {
	return &CartStore{state: CartState{Items: []models.CartItem{}}}
}

// Dispatch applies an action and returns the resulting snapshot.
func (s *CartStore) Dispatch(action CartAction) CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceCart(s.state, action)
	return s.snapshotLocked()
}

// Snapshot returns a copy of the current cart contents.
func (s *CartStore) Snapshot() CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *CartStore) snapshotLocked() CartState {
	items := make([]models.CartItem, len(s.state.Items))
	copy(items, s.state.Items)
	return CartState{Items: items}
}

// Add is a convenience wrapper generating the line id and timestamp.
func (s *CartStore) Add(productID, color, size string, quantity int) CartState {
	return s.Dispatch(AddItem{Item: models.CartItem{
		ID:        uuid.New().String(),
		ProductID: productID,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}})
}

// ItemCount sums line quantities.
func (st CartState) ItemCount() int {
	count := 0
	for _, item := range st.Items {
		count += item.Quantity
	}
	return count
}

// CartRegistry maps session ids to their carts, replacing the original's
// module-level map with an injectable container.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*CartStore
}

func NewCartRegistry() *CartRegistry {
	return &CartRegistry{carts: make(map[string]*CartStore)}
}

// ForSession returns the session's cart, creating it on first access.
func (r *CartRegistry) ForSession(sessionID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		cart = NewCartStore()
		r.carts[sessionID] = cart
	}
	return cart
}

// Drop removes a session's cart (post-checkout cleanup).
func (r *CartRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
