// internal/services/supabase_source.go
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/isa-atelier/storefront/internal/config"
	"github.com/isa-atelier/storefront/internal/models"
)

// SupabaseSource reads the catalog from the store's PostgREST endpoint with
// the embedded joins expanded. Errors out of here are transport errors; row
// shape problems are the normalizer's business, which is why rows are decoded
// one at a time downstream.
type SupabaseSource struct {
	baseURL string
	anonKey string
	client  *http.Client
}

const productSelect = "*,categories(name),product_images(url,sort_order),product_variants(size,color,color_hex)"

func NewSupabaseSource(cfg config.CatalogConfig) *SupabaseSource {
	return &SupabaseSource{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		anonKey: cfg.SupabaseKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout) * time.Second,
		},
	}
}

// FetchProducts returns the raw rows ordered by recency descending.
func (s *SupabaseSource) FetchProducts(ctx context.Context) ([]models.RawProduct, error) {
	endpoint := fmt.Sprintf(
		"%s/rest/v1/products?select=%s&order=created_at.desc",
		s.baseURL, url.QueryEscape(productSelect),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: read body: %w", err)
	}

	rows, err := models.DecodeRawProducts(body)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: decode rows: %w", err)
	}

	return rows, nil
}
