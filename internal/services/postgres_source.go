// internal/services/postgres_source.go
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/isa-atelier/storefront/internal/models"
)

// PostgresSource reads the same store schema directly instead of going
// through PostgREST. It reassembles the raw-row shape the normalizer expects,
// so both sources are interchangeable behind ProductSource.

type productRow struct {
	ID              string  `gorm:"column:id;primaryKey"`
	Slug            *string `gorm:"column:slug"`
	Title           *string `gorm:"column:title"`
	Price           *string `gorm:"column:price"` // numeric column read as text; the normalizer coerces
	Description     *string `gorm:"column:description"`
	LongDescription *string `gorm:"column:long_description"`
	Stock           *int    `gorm:"column:stock"`
	CategoryID      *string `gorm:"column:category_id"`
	// Legacy denormalized image column some rows still carry; used only when
	// the product_images join comes back empty.
	ImageURLs pq.StringArray `gorm:"column:image_urls;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
}

func (productRow) TableName() string { return "products" }

type categoryRow struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryRow) TableName() string { return "categories" }

type imageRow struct {
	ProductID string `gorm:"column:product_id"`
	URL       string `gorm:"column:url"`
	SortOrder *int   `gorm:"column:sort_order"`
}

func (imageRow) TableName() string { return "product_images" }

type variantRow struct {
	ProductID string  `gorm:"column:product_id"`
	Size      *string `gorm:"column:size"`
	Color     *string `gorm:"column:color"`
	ColorHex  *string `gorm:"column:color_hex"`
}

func (variantRow) TableName() string { return "product_variants" }

type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// FetchProducts loads products newest-first and attaches their joined rows in
// table order, preserving the original row order the image tie-break relies
// on.
func (s *PostgresSource) FetchProducts(ctx context.Context) ([]models.RawProduct, error) {
	var products []productRow
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	var categories []categoryRow
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var images []imageRow
	if err := s.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("query product images: %w", err)
	}
	imagesByProduct := make(map[string][]models.RawImage)
	for _, img := range images {
		raw := models.RawImage{URL: models.FlexString(img.URL)}
		if img.SortOrder != nil {
			raw.SortOrder = models.FlexInt(*img.SortOrder)
		}
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], raw)
	}

	var variants []variantRow
	if err := s.db.WithContext(ctx).Find(&variants).Error; err != nil {
		return nil, fmt.Errorf("query product variants: %w", err)
	}
	variantsByProduct := make(map[string][]models.RawVariant)
	for _, v := range variants {
		raw := models.RawVariant{}
		if v.Size != nil {
			raw.Size = models.FlexString(*v.Size)
		}
		if v.Color != nil {
			raw.Color = models.FlexString(*v.Color)
		}
		if v.ColorHex != nil {
			raw.ColorHex = models.FlexString(*v.ColorHex)
		}
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], raw)
	}

	rows := make([]models.RawProduct, 0, len(products))
	for _, p := range products {
		row := models.RawProduct{
			ID:     models.FlexString(p.ID),
			Stock:  flexIntPtr(p.Stock),
			Images: imagesByProduct[p.ID],
		}
		if p.Slug != nil {
			row.Slug = models.FlexString(*p.Slug)
		}
		if p.Title != nil {
			row.Title = models.FlexString(*p.Title)
		}
		if p.Price != nil {
			row.Price = parsePrice(*p.Price)
		}
		if p.Description != nil {
			row.Description = models.FlexString(*p.Description)
		}
		if p.LongDescription != nil {
			row.LongDescription = models.FlexString(*p.LongDescription)
		}
		if p.CategoryID != nil {
			row.Category = models.CategoryRef{Name: categoryNames[*p.CategoryID]}
		}
		if len(row.Images) == 0 {
			for _, u := range p.ImageURLs {
				row.Images = append(row.Images, models.RawImage{URL: models.FlexString(u)})
			}
		}
		row.Variants = variantsByProduct[p.ID]

		rows = append(rows, row)
	}

	return rows, nil
}

func flexIntPtr(v *int) models.FlexInt {
	if v == nil {
		return 0
	}
	return models.FlexInt(*v)
}

func parsePrice(v string) models.FlexPrice {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return models.FlexPrice(parsed)
}
