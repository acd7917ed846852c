// internal/utils/pagination.go
package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// AllCategories is the sentinel category value that matches every product.
const AllCategories = "All"

// FilterParams are the browse predicates a shopper can have active at once.
// All active predicates are conjunctive. A nil MaxPrice means the price
// predicate is inactive; MaxPrice itself is an inclusive upper bound.
type FilterParams struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// Equal reports whether two parameter sets describe the same predicates.
// The browse cursor resets whenever this turns false.
func (p FilterParams) Equal(other FilterParams) bool {
	if p.Query != other.Query || p.Category != other.Category {
		return false
	}
	if (p.MaxPrice == nil) != (other.MaxPrice == nil) {
		return false
	}
	return p.MaxPrice == nil || *p.MaxPrice == *other.MaxPrice
}

// GetFilterParams reads the filter predicates from the query string. Absent
// or unparseable values deactivate the predicate instead of erroring.
func GetFilterParams(c *gin.Context) FilterParams {
	params := FilterParams{
		Query:    strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
	}

	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil && maxPrice >= 0 {
			params.MaxPrice = &maxPrice
		}
	}

	return params
}

// PageWindow describes the visible slice of a filtered result set.
type PageWindow struct {
	Visible  int  `json:"visible"`
	Total    int  `json:"total"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}
