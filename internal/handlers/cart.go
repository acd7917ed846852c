// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/isa-atelier/storefront/internal/services"
	"github.com/isa-atelier/storefront/internal/utils"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	utils.SuccessResponse(c, gin.H{
		"items":      h.carts.Items(sessionID),
		"subtotal":   h.carts.Subtotal(sessionID),
		"item_count": h.carts.ItemCount(sessionID),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	item, err := h.carts.Add(sessionID, &req)
	if err != nil {
		if validationErrs, ok := unwrapValidationErrors(err); ok {
			utils.ValidationErrorResponse(c, validationErrs)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item":       item,
		"items":      h.carts.Items(sessionID),
		"subtotal":   h.carts.Subtotal(sessionID),
		"item_count": h.carts.ItemCount(sessionID),
	})
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// PATCH /cart/items/:id
func (h *CartHandler) AdjustQuantity(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	var req adjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	item, found := h.carts.AdjustQuantity(sessionID, c.Param("id"), req.Delta)
	if !found {
		utils.NotFoundResponse(c, "Cart line not found", nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item":       item,
		"subtotal":   h.carts.Subtotal(sessionID),
		"item_count": h.carts.ItemCount(sessionID),
	})
}

// DELETE /cart/items/:id
//
// Removing an id that is already gone is a no-op, not an error.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	h.carts.Remove(sessionID, c.Param("id"))

	utils.SuccessResponse(c, gin.H{
		"items":      h.carts.Items(sessionID),
		"subtotal":   h.carts.Subtotal(sessionID),
		"item_count": h.carts.ItemCount(sessionID),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	h.carts.Clear(sessionID)

	utils.SuccessResponse(c, gin.H{
		"items":      h.carts.Items(sessionID),
		"subtotal":   0.0,
		"item_count": 0,
	})
}

func unwrapValidationErrors(err error) ([]utils.ValidationError, bool) {
	for unwrapped := err; unwrapped != nil; {
		if validationErrs, ok := unwrapped.(validator.ValidationErrors); ok {
			return utils.FormatValidationErrors(validationErrs), true
		}
		u, ok := unwrapped.(interface{ Unwrap() error })
		if !ok {
			break
		}
		unwrapped = u.Unwrap()
	}
	return nil, false
}
