// internal/services/normalizer.go
package services

import (
	"sort"
	"strings"

	"github.com/isa-atelier/storefront/internal/models"
	"github.com/isa-atelier/storefront/internal/utils"
)

const defaultColorHex = "#CCCCCC"

// NormalizeOptions carry the configured presentation fallbacks.
type NormalizeOptions struct {
	// DefaultImage, when set, becomes the single image of products whose
	// image join came back empty. Left empty, such products keep an empty
	// image list and the UI shows its placeholder.
	DefaultImage string
	// FallbackColorHex backs variant colors that have a name but no hex.
	FallbackColorHex string
}

// NormalizeProducts converts raw upstream rows into canonical products. It is
// a total function: a malformed row degrades to safe defaults and stays in
// the catalog, because a degraded entry is preferable to a silently missing
// one. Row order is preserved.
func NormalizeProducts(rows []models.RawProduct, opts NormalizeOptions) []models.Product {
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, normalizeRow(row, opts))
	}
	return products
}

func normalizeRow(row models.RawProduct, opts NormalizeOptions) models.Product {
	id := strings.TrimSpace(row.ID.String())
	title := strings.TrimSpace(row.Title.String())

	slug := strings.TrimSpace(row.Slug.String())
	if slug == "" {
		slug = utils.FallbackSlug(title, id)
	}

	category := row.CategoryName()
	if category == "" {
		category = models.DefaultCategory
	}

	price := float64(row.Price)
	if price < 0 {
		price = 0
	}

	stock := int(row.Stock)
	if stock < 0 {
		stock = 0
	}

	return models.Product{
		ID:              id,
		Slug:            slug,
		Title:           title,
		Category:        category,
		Price:           price,
		Description:     row.Description.String(),
		LongDescription: row.LongDescription.String(),
		Images:          normalizeImages(row.Images, opts.DefaultImage),
		Sizes:           normalizeSizes(row.Variants),
		Colors:          normalizeColors(row.Variants, opts.FallbackColorHex),
		Stock:           stock,
	}
}

// normalizeImages orders by the explicit sort key ascending, keeping the
// original row order for ties. A missing sort key counts as 0.
func normalizeImages(images []models.RawImage, defaultImage string) []string {
	kept := make([]models.RawImage, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.URL.String()) != "" {
			kept = append(kept, img)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SortOrder < kept[j].SortOrder
	})

	urls := make([]string, 0, len(kept))
	for _, img := range kept {
		urls = append(urls, strings.TrimSpace(img.URL.String()))
	}

	if len(urls) == 0 && defaultImage != "" {
		urls = append(urls, defaultImage)
	}

	return urls
}

// normalizeSizes keeps distinct size labels in first-occurrence order. Order
// matters: the detail view preselects sizes[0].
func normalizeSizes(variants []models.RawVariant) []string {
	sizes := make([]string, 0, len(variants))
	seen := make(map[string]bool, len(variants))

	for _, v := range variants {
		size := strings.TrimSpace(v.Size.String())
		if size == "" || seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
	}

	return sizes
}

// normalizeColors dedupes by color name; the first occurrence wins, including
// its hex. A named color without a hex still gets an entry.
func normalizeColors(variants []models.RawVariant, fallbackHex string) []models.Color {
	if fallbackHex == "" {
		fallbackHex = defaultColorHex
	}

	colors := make([]models.Color, 0, len(variants))
	seen := make(map[string]bool, len(variants))

	for _, v := range variants {
		name := strings.TrimSpace(v.Color.String())
		if name == "" || seen[name] {
			continue
		}

		hex := strings.TrimSpace(v.ColorHex.String())
		if hex == "" {
			hex = fallbackHex
		}

		seen[name] = true
		colors = append(colors, models.Color{Name: name, Hex: hex})
	}

	return colors
}
