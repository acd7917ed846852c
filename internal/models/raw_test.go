// internal/models/raw_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexPrice(t *testing.T) {
	tests := []struct {
		in  string
		out float64
	}{
		{`245`, 245},
		{`245.5`, 245.5},
		{`"245.00"`, 245},
		{`" 99.9 "`, 99.9},
		{`null`, 0},
		{`"not a number"`, 0},
		{`{"nested": true}`, 0},
		{`[1, 2]`, 0},
	}

	for _, tt := range tests {
		var p FlexPrice
		require.NoError(t, p.UnmarshalJSON([]byte(tt.in)), "input %s", tt.in)
		assert.Equal(t, tt.out, float64(p), "input %s", tt.in)
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in  string
		out int
	}{
		{`7`, 7},
		{`7.9`, 7},
		{`"12"`, 12},
		{`null`, 0},
		{`"garbage"`, 0},
	}

	for _, tt := range tests {
		var i FlexInt
		require.NoError(t, i.UnmarshalJSON([]byte(tt.in)), "input %s", tt.in)
		assert.Equal(t, tt.out, int(i), "input %s", tt.in)
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`"hello"`, "hello"},
		{`42`, "42"},
		{`42.5`, "42.5"},
		{`null`, ""},
		{`{"x": 1}`, ""},
	}

	for _, tt := range tests {
		var s FlexString
		require.NoError(t, s.UnmarshalJSON([]byte(tt.in)), "input %s", tt.in)
		assert.Equal(t, tt.out, s.String(), "input %s", tt.in)
	}
}

func TestCategoryRefShapes(t *testing.T) {
	tests := []struct {
		in   string
		name string
	}{
		{`{"name": "Dress Pant"}`, "Dress Pant"},
		{`[{"name": "Chino Pant"}, {"name": "Second"}]`, "Chino Pant"},
		{`"Accessories"`, "Accessories"},
		{`[]`, ""},
		{`null`, ""},
		{`42`, ""},
	}

	for _, tt := range tests {
		var ref CategoryRef
		require.NoError(t, ref.UnmarshalJSON([]byte(tt.in)), "input %s", tt.in)
		assert.Equal(t, tt.name, ref.Name, "input %s", tt.in)
	}
}

func TestRawImageBareString(t *testing.T) {
	var img RawImage
	require.NoError(t, json.Unmarshal([]byte(`"cover.jpg"`), &img))
	assert.Equal(t, "cover.jpg", img.URL.String())
	assert.Equal(t, 0, int(img.SortOrder))

	require.NoError(t, json.Unmarshal([]byte(`{"url": "b.jpg", "sort_order": 3}`), &img))
	assert.Equal(t, "b.jpg", img.URL.String())
	assert.Equal(t, 3, int(img.SortOrder))
}

func TestDecodeRawProductsKeepsMalformedRows(t *testing.T) {
	rows, err := DecodeRawProducts([]byte(`[
		{"id": "p1", "title": "Good"},
		{"id": "p2", "title": "Odd Price", "price": {"amount": 9}},
		"not even an object"
	]`))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Good", rows[0].Title.String())
	assert.Equal(t, 0.0, float64(rows[1].Price))
	// A row that is not an object decodes to the zero row.
	assert.Empty(t, rows[2].ID.String())
}

func TestDecodeRawProductsBadPayload(t *testing.T) {
	_, err := DecodeRawProducts([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestRawProductCategoryPrecedence(t *testing.T) {
	var row RawProduct
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "p1",
		"categories": {"name": "Joined"},
		"category": "Flat"
	}`), &row))
	assert.Equal(t, "Joined", row.CategoryName())

	row = RawProduct{}
	require.NoError(t, json.Unmarshal([]byte(`{"id": "p2", "category": "Flat"}`), &row))
	assert.Equal(t, "Flat", row.CategoryName())
}
