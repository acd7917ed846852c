// internal/services/cart_service.go
package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/isa-atelier/storefront/internal/models"
	"github.com/isa-atelier/storefront/internal/utils"
)

// AddToCartRequest is a fully-specified candidate line. Title, price and
// image are snapshotted into the line as given; the engine does not resolve
// them against the catalog, and it does not validate that size/color are
// members of the product's declared sets; that belongs to the caller.
type AddToCartRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"min=0"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// CartService owns every session's cart lines; it is the single writer path
// for cart state. Lines live for the duration of the session only.
type CartService struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string][]models.CartItem),
	}
}

// Add merges the candidate into an existing line when the identity key
// (product id, size, color) matches, incrementing its quantity by 1.
// Otherwise it appends a new line with a fresh session-local id and quantity
// 1, the only place 1 is asserted as a starting quantity. The resulting line
// is returned either way.
func (s *CartService) Add(sessionID string, req *AddToCartRequest) (models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.CartItem{}, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].SameSelection(req.ProductID, req.Size, req.Color) {
			items[i].Quantity++
			return items[i], nil
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Image:     req.Image,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  1,
	}
	s.carts[sessionID] = append(items, item)

	return item, nil
}

// AdjustQuantity applies max(1, quantity+delta). Decrementing through the
// floor clamps at 1: "fewer than one" and "none at all" are different
// shopper intents, and only Remove expresses the latter. An unknown line id
// is a no-op.
func (s *CartService) AdjustQuantity(sessionID, itemID string, delta int) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			if q := items[i].Quantity + delta; q > 1 {
				items[i].Quantity = q
			} else {
				items[i].Quantity = 1
			}
			return items[i], true
		}
	}

	return models.CartItem{}, false
}

// Remove deletes the line unconditionally. Removing an id that is not there
// is a no-op, not an error.
func (s *CartService) Remove(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.carts[sessionID] = kept
}

// Clear wipes the whole cart. This is the explicit session reset; checkout
// handoff never calls it.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Items returns a copy of the ordered lines.
func (s *CartService) Items(sessionID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[sessionID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Subtotal folds price*quantity left to right over the lines, in line order.
// No rounding happens here; presentation rounds.
func (s *CartService) Subtotal(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subtotal float64
	for _, item := range s.carts[sessionID] {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// ItemCount is the total quantity across lines, shown on the header badge.
func (s *CartService) ItemCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, item := range s.carts[sessionID] {
		count += item.Quantity
	}
	return count
}
