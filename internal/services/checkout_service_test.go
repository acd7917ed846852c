// internal/services/checkout_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutForm() *CheckoutRequest {
	return &CheckoutRequest{
		FullName: "Ada Client",
		Email:    "ada@example.com",
		Phone:    "+1 555 0100",
		Address:  "12 Savile Row",
		City:     "London",
		Zip:      "W1S 3PQ",
	}
}

func TestCheckoutShippingThreshold(t *testing.T) {
	carts := NewCartService()
	checkout := NewCheckoutService(carts, 150, 25)

	_, err := carts.Add("s1", &AddToCartRequest{ProductID: "p1", Title: "Tie", Price: 60})
	require.NoError(t, err)

	summary := checkout.Summary("s1")
	assert.Equal(t, 60.0, summary.Subtotal)
	assert.Equal(t, 25.0, summary.Shipping)
	assert.Equal(t, 85.0, summary.Total)

	// Exactly at the threshold still pays shipping; free starts above it.
	_, err = carts.Add("s1", &AddToCartRequest{ProductID: "p2", Title: "Belt", Price: 90})
	require.NoError(t, err)
	summary = checkout.Summary("s1")
	assert.Equal(t, 150.0, summary.Subtotal)
	assert.Equal(t, 25.0, summary.Shipping)

	_, err = carts.Add("s1", &AddToCartRequest{ProductID: "p3", Title: "Socks", Price: 10})
	require.NoError(t, err)
	summary = checkout.Summary("s1")
	assert.Equal(t, 160.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.Equal(t, 160.0, summary.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := NewCartService()
	checkout := NewCheckoutService(carts, 150, 25)

	summary := checkout.Summary("s1")
	assert.Empty(t, summary.Items)
	assert.Equal(t, 25.0, summary.Shipping)

	_, err := checkout.PlaceOrder("s1", checkoutForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutPlaceOrderKeepsCart(t *testing.T) {
	carts := NewCartService()
	checkout := NewCheckoutService(carts, 150, 25)

	_, err := carts.Add("s1", &AddToCartRequest{ProductID: "p1", Title: "Trouser", Price: 245})
	require.NoError(t, err)

	summary, err := checkout.PlaceOrder("s1", checkoutForm())
	require.NoError(t, err)
	assert.NotEmpty(t, summary.Reference)
	assert.Equal(t, 245.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)

	// The handoff does not consume the cart.
	assert.Len(t, carts.Items("s1"), 1)

	// A second order gets a fresh reference.
	again, err := checkout.PlaceOrder("s1", checkoutForm())
	require.NoError(t, err)
	assert.NotEqual(t, summary.Reference, again.Reference)
}

func TestCheckoutFormValidation(t *testing.T) {
	carts := NewCartService()
	checkout := NewCheckoutService(carts, 150, 25)

	_, err := carts.Add("s1", &AddToCartRequest{ProductID: "p1", Title: "Trouser", Price: 245})
	require.NoError(t, err)

	form := checkoutForm()
	form.Email = "not-an-email"
	_, err = checkout.PlaceOrder("s1", form)
	assert.Error(t, err)
}
