// internal/services/normalizer_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isa-atelier/storefront/internal/models"
)

func decodeRows(t *testing.T, payload string) []models.RawProduct {
	t.Helper()
	rows, err := models.DecodeRawProducts([]byte(payload))
	require.NoError(t, err)
	return rows
}

func TestNormalizeProductsOrdersImagesAndCoercesPrice(t *testing.T) {
	rows := decodeRows(t, `[{
		"id": "p1",
		"title": "Wool Trouser",
		"price": "245.00",
		"product_images": [
			{"url": "a.jpg", "sort_order": 2},
			{"url": "b.jpg", "sort_order": 1}
		]
	}]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, p.Images)
	assert.Equal(t, 245.0, p.Price)
	assert.Equal(t, "Wool Trouser", p.Title)
}

func TestNormalizeProductsImageTieBreakKeepsRowOrder(t *testing.T) {
	rows := decodeRows(t, `[{
		"id": "p1",
		"title": "Trouser",
		"product_images": [
			{"url": "first.jpg", "sort_order": 1},
			{"url": "second.jpg", "sort_order": 1},
			{"url": "lead.jpg"}
		]
	}]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 1)

	// Missing sort_order counts as 0 and sorts first; equal keys keep
	// their original order.
	assert.Equal(t, []string{"lead.jpg", "first.jpg", "second.jpg"}, products[0].Images)
}

func TestNormalizeProductsDefaults(t *testing.T) {
	rows := decodeRows(t, `[{"id": "abcdef1234567890", "title": "Linen Shirt"}]`)

	products := NormalizeProducts(rows, NormalizeOptions{DefaultImage: "placeholder.jpg"})
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, models.DefaultCategory, p.Category)
	assert.Equal(t, "linen-shirt-34567890", p.Slug)
	assert.Equal(t, []string{"placeholder.jpg"}, p.Images)
	assert.Empty(t, p.Sizes)
	assert.Empty(t, p.Colors)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 0, p.Stock)
}

func TestNormalizeProductsKeepsDegradedRows(t *testing.T) {
	rows := decodeRows(t, `[
		{"id": "p1", "title": "Good", "price": 100},
		{"id": "p2", "title": "Bad", "price": {"nested": true}, "stock": "garbage"},
		{"id": "p3", "title": "Also Good", "price": -5}
	]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 3)

	assert.Equal(t, 100.0, products[0].Price)
	assert.Equal(t, 0.0, products[1].Price)
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, 0.0, products[2].Price)
}

func TestNormalizeProductsCategoryShapes(t *testing.T) {
	rows := decodeRows(t, `[
		{"id": "p1", "title": "A", "categories": {"name": "Dress Pant"}},
		{"id": "p2", "title": "B", "categories": [{"name": "Chino Pant"}, {"name": "Ignored"}]},
		{"id": "p3", "title": "C", "category": "Accessories"},
		{"id": "p4", "title": "D", "categories": []}
	]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 4)

	assert.Equal(t, "Dress Pant", products[0].Category)
	assert.Equal(t, "Chino Pant", products[1].Category)
	assert.Equal(t, "Accessories", products[2].Category)
	assert.Equal(t, models.DefaultCategory, products[3].Category)
}

func TestNormalizeProductsVariantDedup(t *testing.T) {
	rows := decodeRows(t, `[{
		"id": "p1",
		"title": "Trouser",
		"product_variants": [
			{"size": "32", "color": "Navy", "color_hex": "#1B2A4A"},
			{"size": "30", "color": "Navy", "color_hex": "#000080"},
			{"size": "32", "color": "Olive"},
			{"size": "", "color": ""}
		]
	}]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 1)
	p := products[0]

	// Sizes keep first-occurrence order; duplicates collapse.
	assert.Equal(t, []string{"32", "30"}, p.Sizes)

	// First occurrence of a color name wins, hex included. A color with no
	// hex falls back to the configured default.
	require.Len(t, p.Colors, 2)
	assert.Equal(t, models.Color{Name: "Navy", Hex: "#1B2A4A"}, p.Colors[0])
	assert.Equal(t, models.Color{Name: "Olive", Hex: defaultColorHex}, p.Colors[1])
}

func TestNormalizeProductsBareStringImages(t *testing.T) {
	rows := decodeRows(t, `[{
		"id": "p1",
		"title": "Trouser",
		"product_images": ["one.jpg", "", "two.jpg"]
	}]`)

	products := NormalizeProducts(rows, NormalizeOptions{})
	require.Len(t, products, 1)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, products[0].Images)
}

func TestNormalizeProductsIsRepeatable(t *testing.T) {
	rows := decodeRows(t, `[
		{"id": "p1", "title": "Trouser", "price": "99.50",
		 "product_images": [{"url": "x.jpg", "sort_order": 3}, {"url": "y.jpg", "sort_order": 1}],
		 "product_variants": [{"size": "M", "color": "Grey", "color_hex": "#888888"}]}
	]`)

	first := NormalizeProducts(rows, NormalizeOptions{})
	second := NormalizeProducts(rows, NormalizeOptions{})
	assert.Equal(t, first, second)
}
