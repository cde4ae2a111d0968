package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/models"
)

func checkoutForm() models.CheckoutRequest {
	return models.CheckoutRequest{
		Email:         "buyer@example.com",
		FirstName:     "Grace",
		LastName:      "Hopper",
		Address:       "1 Navy Way",
		City:          "Arlington",
		State:         "VA",
		Zip:           "22202",
		PaymentMethod: "card",
	}
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-001", Quantity: 2, Color: "Black", Size: "10",
	})
	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-003", Quantity: 1, Color: "Steel", Size: "One Size",
	})

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-1", checkoutForm())
	requireStatus(t, recorder, http.StatusCreated)

	var resp models.OrderResponse
	decodeBody(t, recorder, &resp)

	require.NotNil(t, resp.Data)
	order := resp.Data
	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, `^ATH-\d{6}$`, order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 2*129.99+29.99, order.Subtotal, 0.001)
	assert.Nil(t, order.Billing)

	// The cart is emptied after checkout.
	cartRecorder := doRequest(t, router, http.MethodGet, "/api/v1/storefront/cart", "sess-1", nil)
	var cart models.CartResponse
	decodeBody(t, cartRecorder, &cart)
	assert.Empty(t, cart.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-empty", checkoutForm())
	requireStatus(t, recorder, http.StatusUnprocessableEntity)

	var resp models.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "EMPTY_CART", resp.Error.Code)
}

func TestCheckout_MissingRequiredFields(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-001", Quantity: 1,
	})

	form := checkoutForm()
	form.Address = ""
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-1", form)
	requireStatus(t, recorder, http.StatusBadRequest)
}

func TestCheckout_SeparateBillingAddress(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-002", Quantity: 1, Color: "Black", Size: "M",
	})

	form := checkoutForm()
	form.BillingFirstName = "Grace"
	form.BillingLastName = "Hopper"
	form.BillingAddress = "90 Church St"
	form.BillingCity = "New York"
	form.BillingState = "NY"
	form.BillingZip = "10007"

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-1", form)
	requireStatus(t, recorder, http.StatusCreated)

	var resp models.OrderResponse
	decodeBody(t, recorder, &resp)
	require.NotNil(t, resp.Data.Billing)
	assert.Equal(t, "90 Church St", resp.Data.Billing.Address)
}

func TestCheckout_NewsletterOptIn(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-004", Quantity: 1, Color: "White", Size: "9",
	})

	form := checkoutForm()
	form.Newsletter = true
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-1", form)
	requireStatus(t, recorder, http.StatusCreated)

	// The address is now on the list, so a direct subscribe conflicts.
	recorder = doRequest(t, router, http.MethodPost, "/api/v1/storefront/newsletter", "", models.NewsletterRequest{
		Email: form.Email,
	})
	requireStatus(t, recorder, http.StatusConflict)
}

func TestGetOrder(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/storefront/cart/items", "sess-1", models.AddCartItemRequest{
		ProductID: "p-001", Quantity: 1, Color: "Black", Size: "9",
	})
	created := doRequest(t, router, http.MethodPost, "/api/v1/storefront/checkout", "sess-1", checkoutForm())

	var checkout models.OrderResponse
	decodeBody(t, created, &checkout)
	require.NotNil(t, checkout.Data)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/storefront/orders/"+checkout.Data.ID, "sess-1", nil)
	requireStatus(t, recorder, http.StatusOK)

	var resp models.OrderResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, checkout.Data.OrderNumber, resp.Data.OrderNumber)
}

func TestGetOrder_NotFound(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/storefront/orders/missing-id", "", nil)
	requireStatus(t, recorder, http.StatusNotFound)
}
