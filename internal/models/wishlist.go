package models

import "time"

// WishlistItem is a saved-for-later product snapshot. The price and image
// are denormalized at add time so the wishlist renders without a catalog
// round trip.
type WishlistItem struct {
	ProductID      string   `json:"productId"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"`
	Image          string   `json:"image,omitempty"`
	Category       string   `json:"category,omitempty"`
	AddedAt        time.Time `json:"addedAt"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type WishlistResponse struct {
	Success bool           `json:"success"`
	Items   []WishlistItem `json:"items"`
	Count   int            `json:"count"`
}
