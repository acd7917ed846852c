// internal/services/browse_service.go
package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/isa-atelier/storefront/internal/models"
	"github.com/isa-atelier/storefront/internal/utils"
)

// Collection scoping mirrors the merchandised views: ready-to-wear hides the
// bespoke and accessories lines, and the sale rail picks up discounted or
// archive pieces.
const (
	categoryBespoke     = "Bespoke"
	categoryAccessories = "Accessories"
	archiveMarker       = "archive"
)

var fabricCategories = map[string]bool{
	"Dress Pant":  true,
	"Cotton Pant": true,
	"Chino Pant":  true,
}

// FilterProducts applies the active predicates conjunctively and returns the
// matching subset in catalog order. It is pure: identical inputs always yield
// the same result, so callers may memoize.
//
// The text predicate is a case-insensitive substring match over title,
// category and description.
func FilterProducts(products []models.Product, params utils.FilterParams) []models.Product {
	query := strings.ToLower(params.Query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		if params.Category != "" && params.Category != utils.AllCategories && p.Category != params.Category {
			continue
		}

		if params.MaxPrice != nil && p.Price > *params.MaxPrice {
			continue
		}

		matched = append(matched, p)
	}

	return matched
}

// CollectionProducts scopes the catalog to the base set a listing view shows,
// before the shopper's own filters apply.
func CollectionProducts(products []models.Product, view View, saleCeiling float64) []models.Product {
	keep := func(p models.Product) bool { return true }

	switch view {
	case ViewShop:
		keep = func(p models.Product) bool {
			return p.Category != categoryBespoke && p.Category != categoryAccessories
		}
	case ViewFabrics:
		keep = func(p models.Product) bool { return fabricCategories[p.Category] }
	case ViewTailoring:
		keep = func(p models.Product) bool { return p.Category == categoryBespoke }
	case ViewAccessories:
		keep = func(p models.Product) bool { return p.Category == categoryAccessories }
	case ViewSale:
		keep = func(p models.Product) bool {
			return p.Category != categoryBespoke && onSale(p, saleCeiling)
		}
	}

	scoped := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			scoped = append(scoped, p)
		}
	}
	return scoped
}

func onSale(p models.Product, ceiling float64) bool {
	return p.Price < ceiling || strings.Contains(strings.ToLower(p.Title), archiveMarker)
}

type browseState struct {
	view    View
	params  utils.FilterParams
	visible int
}

// BrowseService owns each session's derived listing state: the active filter
// predicates and the "load more" cursor. The cursor starts at one page and
// grows by one page per load-more; it resets whenever the view or any
// predicate changes, since a scroll position has no meaning against a new
// result set.
type BrowseService struct {
	pageSize    int
	saleCeiling float64

	mu     sync.Mutex
	states map[string]*browseState
}

func NewBrowseService(pageSize int, saleCeiling float64) *BrowseService {
	if pageSize < 1 {
		pageSize = 1
	}
	return &BrowseService{
		pageSize:    pageSize,
		saleCeiling: saleCeiling,
		states:      make(map[string]*browseState),
	}
}

// Window recomputes the visible slice for a session: collection scope, then
// filters, then the cursor window. Changing view or predicates resets the
// cursor to the first page.
func (s *BrowseService) Window(sessionID string, view View, params utils.FilterParams, products []models.Product) ([]models.Product, utils.PageWindow) {
	filtered := FilterProducts(CollectionProducts(products, view, s.saleCeiling), params)

	s.mu.Lock()
	state := s.syncState(sessionID, view, params)
	visible := state.visible
	s.mu.Unlock()

	return s.window(filtered, visible)
}

// LoadMore grows the cursor by one page size and returns the new window. A
// load-more carrying changed predicates behaves like a fresh first page.
func (s *BrowseService) LoadMore(sessionID string, view View, params utils.FilterParams, products []models.Product) ([]models.Product, utils.PageWindow) {
	filtered := FilterProducts(CollectionProducts(products, view, s.saleCeiling), params)

	s.mu.Lock()
	state := s.syncState(sessionID, view, params)
	if !state.fresh {
		state.visible += s.pageSize
	}
	visible := state.visible
	s.mu.Unlock()

	return s.window(filtered, visible)
}

// CategoryOptions derives the selectable categories for a listing view from
// its scoped collection: distinct values, sorted, with "All" prepended.
func (s *BrowseService) CategoryOptions(view View, products []models.Product) []string {
	scoped := CollectionProducts(products, view, s.saleCeiling)

	seen := make(map[string]bool)
	var categories []string
	for _, p := range scoped {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)

	return append([]string{utils.AllCategories}, categories...)
}

// Reset drops the session's browse state entirely.
func (s *BrowseService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

type syncedState struct {
	*browseState
	fresh bool
}

// syncState returns the session's state, resetting the cursor when the view
// or predicates changed. Caller holds the lock.
func (s *BrowseService) syncState(sessionID string, view View, params utils.FilterParams) syncedState {
	state, ok := s.states[sessionID]
	if !ok || state.view != view || !state.params.Equal(params) {
		state = &browseState{view: view, params: params, visible: s.pageSize}
		s.states[sessionID] = state
		return syncedState{browseState: state, fresh: true}
	}
	return syncedState{browseState: state}
}

func (s *BrowseService) window(filtered []models.Product, visible int) ([]models.Product, utils.PageWindow) {
	shown := visible
	if shown > len(filtered) {
		shown = len(filtered)
	}

	items := make([]models.Product, shown)
	copy(items, filtered[:shown])

	return items, utils.PageWindow{
		Visible:  shown,
		Total:    len(filtered),
		PageSize: s.pageSize,
		HasMore:  shown < len(filtered),
	}
}
