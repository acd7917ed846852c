// internal/handlers/navigation.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/isa-atelier/storefront/internal/services"
	"github.com/isa-atelier/storefront/internal/utils"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// GET /navigation/resolve?fragment=...
//
// Runs on the initial load and on every fragment change. Resolving the
// fragment that is already active is still a valid navigation; the client
// may re-scroll or refresh the same view, so it is never swallowed here.
func (h *NavigationHandler) Resolve(c *gin.Context) {
	route := services.ResolveFragment(c.Query("fragment"))

	utils.SuccessResponse(c, gin.H{
		"route":   route,
		"listing": route.View.ListingView(),
	})
}
