// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, rawQuery string) FilterParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/products?"+rawQuery, nil)
	return GetFilterParams(c)
}

func TestGetFilterParams(t *testing.T) {
	params := paramsFor(t, "search=+wool+&category=Dress+Pant&max_price=120.5")
	assert.Equal(t, "wool", params.Query)
	assert.Equal(t, "Dress Pant", params.Category)
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, 120.5, *params.MaxPrice)
}

func TestGetFilterParamsUnparseableDeactivates(t *testing.T) {
	assert.Nil(t, paramsFor(t, "max_price=abc").MaxPrice)
	assert.Nil(t, paramsFor(t, "max_price=-10").MaxPrice)
	assert.Nil(t, paramsFor(t, "").MaxPrice)
}

func TestFilterParamsEqual(t *testing.T) {
	price := 100.0
	samePrice := 100.0
	otherPrice := 50.0

	assert.True(t, FilterParams{}.Equal(FilterParams{}))
	assert.True(t, FilterParams{Query: "wool", MaxPrice: &price}.Equal(FilterParams{Query: "wool", MaxPrice: &samePrice}))
	assert.False(t, FilterParams{MaxPrice: &price}.Equal(FilterParams{MaxPrice: &otherPrice}))
	assert.False(t, FilterParams{MaxPrice: &price}.Equal(FilterParams{}))
	assert.False(t, FilterParams{Query: "wool"}.Equal(FilterParams{Query: "silk"}))
	assert.False(t, FilterParams{Category: "All"}.Equal(FilterParams{Category: "Shirting"}))
}
