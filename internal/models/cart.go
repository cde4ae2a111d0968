package models

import "time"

// CartItem is one line in a session cart. Items are keyed by the
// (product, color, size) triple; adding the same triple merges quantities.
type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// EnrichedCartItem is a cart item joined with its catalog product for display.
// Product is nil when the catalog no longer carries the item.
type EnrichedCartItem struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}

// AddCartItemRequest adds an item to the session cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// UpdateCartItemRequest sets an item quantity; zero or negative removes it.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Success   bool               `json:"success"`
	Items     []EnrichedCartItem `json:"items"`
	Subtotal  float64            `json:"subtotal"`
	ItemCount int                `json:"itemCount"`
}
