// internal/models/product.go
package models

// Product is the canonical catalog entity for a session. Instances are
// immutable once built; a catalog reload produces a fresh set instead of
// mutating products in place.
type Product struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Images          []string `json:"images"`
	Sizes           []string `json:"sizes"`
	Colors          []Color  `json:"colors"`
	Stock           int      `json:"stock"`
}

// Color is a named swatch. Name is the dedup key across a product's variants.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DefaultCategory is assigned when the upstream category join is absent or
// empty.
const DefaultCategory = "Uncategorized"

// DefaultSize returns the size the detail view preselects, which is why size
// order must be deterministic.
func (p *Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// DefaultColor returns the color name the detail view preselects.
func (p *Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0].Name
}

// FirstImage returns the lead image, or an empty string when the product has
// none (the UI falls back to a placeholder).
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type CatalogStatus string

const (
	CatalogStatusLoading CatalogStatus = "loading"
	CatalogStatusReady   CatalogStatus = "ready"
	CatalogStatusFailed  CatalogStatus = "failed"
)

// CatalogState is the snapshot readers get alongside the product set. Loading,
// ready and failed are mutually exclusive; an empty ready catalog is valid.
type CatalogState struct {
	Status CatalogStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
	Count  int           `json:"count"`
}
