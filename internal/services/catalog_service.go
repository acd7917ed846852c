// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/isa-atelier/storefront/internal/models"
)

// ProductSource is the read-only catalog collaborator. Rows come back ordered
// by recency descending; the service does not validate anything about the
// source beyond consuming rows or a transport error.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]models.RawProduct, error)
}

// ErrLoadInFlight is returned when a load is requested while one is already
// running. Only one fetch is ever in flight, so there is nothing to cancel.
var ErrLoadInFlight = errors.New("catalog load already in flight")

// CatalogService owns the normalized product set for the process. It is the
// sole writer of the catalog: Load swaps the whole slice in one step so
// readers never observe a half-updated collection. Retry is caller-initiated
// (call Load again); there is no automatic backoff.
type CatalogService struct {
	source ProductSource
	opts   NormalizeOptions

	mu       sync.RWMutex
	inFlight bool
	status   models.CatalogStatus
	products []models.Product
	lastErr  error
}

func NewCatalogService(source ProductSource, opts NormalizeOptions) *CatalogService {
	return &CatalogService{
		source: source,
		opts:   opts,
		// Not-yet-loaded reads as loading; views must not filter against it.
		status: models.CatalogStatusLoading,
	}
}

// Load fetches and normalizes the catalog. Three outcomes: success populates
// the set and clears the error state, an empty result is a valid ready state,
// and a transport failure records the failed state and leaves the catalog
// empty. Shape errors never surface here; the normalizer degrades them.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrLoadInFlight
	}
	s.inFlight = true
	s.status = models.CatalogStatusLoading
	s.mu.Unlock()

	rows, err := s.source.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.status = models.CatalogStatusFailed
		s.lastErr = err
		s.products = nil
		logrus.WithError(err).Error("Catalog fetch failed")
		return err
	}

	s.products = NormalizeProducts(rows, s.opts)
	s.status = models.CatalogStatusReady
	s.lastErr = nil
	logrus.WithField("count", len(s.products)).Info("Catalog loaded")
	return nil
}

// State returns the current lifecycle snapshot.
func (s *CatalogService) State() models.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := models.CatalogState{
		Status: s.status,
		Count:  len(s.products),
	}
	if s.lastErr != nil {
		state.Error = s.lastErr.Error()
	}
	return state
}

// Products returns the current product set. The slice is a copy; the products
// themselves are immutable for the session.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindBySlug resolves a detail-page lookup. A miss is a presentational
// not-found state for the caller, not an error here.
func (s *CatalogService) FindBySlug(slug string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories derives the selectable category options from the loaded catalog
// (distinct values, sorted) so the shopper is never offered a category with
// zero matching products.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	sort.Strings(categories)
	return categories
}
