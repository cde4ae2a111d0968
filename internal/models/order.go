package models

import "time"

// OrderStatus tracks an order through its (stubbed) lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Address is a shipping or billing address.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// OrderItem is a priced snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is the checkout result. Payment is recorded, never processed.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	Email         string      `json:"email"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Shipping      Address     `json:"shipping"`
	Billing       *Address    `json:"billing,omitempty"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Status        OrderStatus `json:"status"`
	Newsletter    bool        `json:"newsletter"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// CheckoutRequest carries the checkout form. Billing fields are optional
// and default to the shipping address.
type CheckoutRequest struct {
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Newsletter  bool   `json:"newsletter"`

	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Apartment string `json:"apartment"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`

	BillingFirstName string `json:"billingFirstName"`
	BillingLastName  string `json:"billingLastName"`
	BillingAddress   string `json:"billingAddress"`
	BillingCity      string `json:"billingCity"`
	BillingState     string `json:"billingState"`
	BillingZip       string `json:"billingZip"`

	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type OrderResponse struct {
	Success bool    `json:"success"`
	Data    *Order  `json:"data"`
	Message *string `json:"message,omitempty"`
}
