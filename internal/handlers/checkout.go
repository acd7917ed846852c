// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isa-atelier/storefront/internal/services"
	"github.com/isa-atelier/storefront/internal/utils"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
}

func NewCheckoutHandler(checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// GET /checkout
//
// The handoff view: the ordered cart lines plus derived totals. An empty bag
// is a valid summary; the client renders its empty state.
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"summary": h.checkout.Summary(sessionID),
	})
}

// POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	summary, err := h.checkout.PlaceOrder(sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ErrorResponse(c, 400, "EMPTY_CART", "Your bag is empty", nil)
			return
		}
		if validationErrs, ok := unwrapValidationErrors(err); ok {
			utils.ValidationErrorResponse(c, validationErrs)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": summary,
	})
}
