// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/isa-atelier/storefront/internal/models"
	"github.com/isa-atelier/storefront/internal/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutRequest is the client information form. Nothing here touches
// payment; the handoff consumes cart lines and contact details only.
type CheckoutRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=5,max=32"`
	Address  string `json:"address" validate:"required,min=5"`
	City     string `json:"city" validate:"required"`
	Zip      string `json:"zip" validate:"required"`
}

// OrderSummary is what checkout hands off: the ordered lines as they are,
// plus derived totals. Amounts stay unrounded; presentation rounds.
type OrderSummary struct {
	Reference string            `json:"reference,omitempty"`
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
	Shipping  float64           `json:"shipping"`
	Total     float64           `json:"total"`
}

// CheckoutService consumes the current cart for the handoff. It never
// mutates cart state: placing an order leaves the lines untouched.
type CheckoutService struct {
	carts            *CartService
	freeShippingOver float64
	flatShippingRate float64
}

func NewCheckoutService(carts *CartService, freeShippingOver, flatShippingRate float64) *CheckoutService {
	return &CheckoutService{
		carts:            carts,
		freeShippingOver: freeShippingOver,
		flatShippingRate: flatShippingRate,
	}
}

// Summary computes the handoff view of the session's cart. An empty cart is
// a valid summary; the caller renders the empty-bag state.
func (s *CheckoutService) Summary(sessionID string) OrderSummary {
	items := s.carts.Items(sessionID)
	subtotal := s.carts.Subtotal(sessionID)

	shipping := s.flatShippingRate
	if subtotal > s.freeShippingOver {
		shipping = 0
	}

	return OrderSummary{
		Items:     items,
		ItemCount: s.carts.ItemCount(sessionID),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal + shipping,
	}
}

// PlaceOrder validates the client form and returns the order reference with
// the final summary. An empty bag is rejected. The cart is deliberately not
// cleared here.
func (s *CheckoutService) PlaceOrder(sessionID string, req *CheckoutRequest) (OrderSummary, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return OrderSummary{}, fmt.Errorf("validation failed: %w", err)
	}

	summary := s.Summary(sessionID)
	if len(summary.Items) == 0 {
		return OrderSummary{}, ErrEmptyCart
	}

	summary.Reference = uuid.NewString()
	return summary, nil
}
