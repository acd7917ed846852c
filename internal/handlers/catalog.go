// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/isa-atelier/storefront/internal/models"
	"github.com/isa-atelier/storefront/internal/services"
	"github.com/isa-atelier/storefront/internal/utils"
)

type CatalogHandler struct {
	catalog *services.CatalogService
	browse  *services.BrowseService
}

func NewCatalogHandler(catalog *services.CatalogService, browse *services.BrowseService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		browse:  browse,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	sessionID, _ := utils.GetSessionIDFromContext(c)
	view := listingView(c.Query("view"))
	params := utils.GetFilterParams(c)

	items, window := h.browse.Window(sessionID, view, params, h.catalog.Products())

	utils.SuccessResponseWithMeta(c, gin.H{
		"products":   items,
		"categories": h.browse.CategoryOptions(view, h.catalog.Products()),
	}, gin.H{
		"view":   view,
		"window": window,
	})
}

// POST /products/load-more
func (h *CatalogHandler) LoadMore(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	sessionID, _ := utils.GetSessionIDFromContext(c)
	view := listingView(c.Query("view"))
	params := utils.GetFilterParams(c)

	items, window := h.browse.LoadMore(sessionID, view, params, h.catalog.Products())

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": items,
	}, gin.H{
		"view":   view,
		"window": window,
	})
}

// GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	slug := c.Param("slug")
	product, found := h.catalog.FindBySlug(slug)
	if !found {
		// Presentational not-found state with a path back to the listing.
		utils.NotFoundResponse(c, "Article not found in the archive", gin.H{
			"listing": "#/shop",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product":       product,
		"default_size":  product.DefaultSize(),
		"default_color": product.DefaultColor(),
	})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": h.catalog.Categories(),
	})
}

// GET /catalog/status
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"catalog": h.catalog.State(),
	})
}

// POST /catalog/reload
//
// Retry is shopper-initiated: this re-triggers the same fetch, with no
// automatic backoff behind it.
func (h *CatalogHandler) Reload(c *gin.Context) {
	if err := h.catalog.Load(c.Request.Context()); err != nil {
		if err == services.ErrLoadInFlight {
			utils.SuccessResponse(c, gin.H{"catalog": h.catalog.State()})
			return
		}
		utils.CatalogUnavailableResponse(c, "CATALOG_UNAVAILABLE", "Catalog could not be loaded", gin.H{
			"retry": "POST /v1/catalog/reload",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{"catalog": h.catalog.State()})
}

// catalogReady answers for the caller when the catalog is not in the ready
// state. Loading and failed are distinct, mutually exclusive states; neither
// permits filtering a not-yet-loaded set.
func (h *CatalogHandler) catalogReady(c *gin.Context) bool {
	state := h.catalog.State()
	switch state.Status {
	case models.CatalogStatusReady:
		return true
	case models.CatalogStatusFailed:
		utils.CatalogUnavailableResponse(c, "CATALOG_UNAVAILABLE", "Catalog could not be loaded", gin.H{
			"error": state.Error,
			"retry": "POST /v1/catalog/reload",
		})
	default:
		utils.CatalogUnavailableResponse(c, "CATALOG_LOADING", "Catalog is still loading", nil)
	}
	return false
}

// listingView maps the view query parameter onto a known listing; anything
// else browses the shop collection.
func listingView(view string) services.View {
	v := services.View(view)
	if v.ListingView() {
		return v
	}
	return services.ViewShop
}
