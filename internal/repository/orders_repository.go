package repository

import (
	"fmt"
	"sync"

	"storefront-service/internal/models"
)

// OrdersRepository keeps orders placed this session in memory, enough for
// the order-success page to read back what checkout produced.
type OrdersRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	seq    int
}

func NewOrdersRepository() *OrdersRepository {
	return &OrdersRepository{orders: make(map[string]models.Order)}
}

// NextOrderNumber issues a human-readable order number.
func (r *OrdersRepository) NextOrderNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("ATH-%06d", r.seq)
}

// Save stores the order.
func (r *OrdersRepository) Save(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
}

// ByID looks up an order.
func (r *OrdersRepository) ByID(id string) (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	return order, ok
}
