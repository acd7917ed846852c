// internal/models/raw.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Raw row types for the catalog source. The upstream join shapes are not
// trusted: joined references arrive as a single object, an array, or not at
// all, and scalar columns show up as strings or numbers depending on the
// client that wrote them. Every decoder here is total: bad input degrades to
// a zero value instead of failing the row.

// FlexString accepts a JSON string or number.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}

	*s = ""
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexPrice coerces a string or numeric price. Missing or unparseable input
// decodes to 0 rather than erroring.
type FlexPrice float64

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = FlexPrice(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*p = FlexPrice(parsed)
			return nil
		}
	}

	*p = 0
	return nil
}

// FlexInt accepts a JSON number (fractions truncated) or a numeric string.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*i = FlexInt(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			*i = FlexInt(parsed)
			return nil
		}
	}

	*i = 0
	return nil
}

// CategoryRef is the tagged-union decode of a joined category reference:
// a single object, an array (first element used), a bare string, or absent.
type CategoryRef struct {
	Name string
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	c.Name = ""
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			Name FlexString `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err == nil {
			c.Name = obj.Name.String()
		}
	case '[':
		var list []CategoryRef
		if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
			c.Name = list[0].Name
		}
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err == nil {
			c.Name = str
		}
	}

	return nil
}

// RawImage is one row of the product_images join. A bare string element is
// accepted as the URL.
type RawImage struct {
	URL       FlexString
	SortOrder FlexInt
}

func (r *RawImage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	r.URL = ""
	r.SortOrder = 0
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err == nil {
			r.URL = FlexString(str)
		}
		return nil
	}

	var obj struct {
		URL       FlexString `json:"url"`
		SortOrder FlexInt    `json:"sort_order"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		r.URL = obj.URL
		r.SortOrder = obj.SortOrder
	}

	return nil
}

// RawVariant is one row of the product_variants join.
type RawVariant struct {
	Size     FlexString `json:"size"`
	Color    FlexString `json:"color"`
	ColorHex FlexString `json:"color_hex"`
}

// RawProduct is one upstream catalog row before normalization.
type RawProduct struct {
	ID              FlexString   `json:"id"`
	Slug            FlexString   `json:"slug"`
	Title           FlexString   `json:"title"`
	Price           FlexPrice    `json:"price"`
	Description     FlexString   `json:"description"`
	LongDescription FlexString   `json:"long_description"`
	Stock           FlexInt      `json:"stock"`
	CategoryJoin    CategoryRef  `json:"categories"`
	Category        CategoryRef  `json:"category"`
	Images          []RawImage   `json:"product_images"`
	Variants        []RawVariant `json:"product_variants"`
}

// CategoryName resolves the category across the join spellings the upstream
// has used over time.
func (r *RawProduct) CategoryName() string {
	if name := strings.TrimSpace(r.CategoryJoin.Name); name != "" {
		return name
	}
	return strings.TrimSpace(r.Category.Name)
}

// DecodeRawProducts decodes a batch of rows one row at a time so a malformed
// row degrades to defaults instead of failing the whole fetch.
func DecodeRawProducts(data []byte) ([]RawProduct, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	rows := make([]RawProduct, len(raws))
	for i, raw := range raws {
		// Decode errors are deliberately swallowed; the zero row normalizes
		// to a degraded but displayable product.
		json.Unmarshal(raw, &rows[i])
	}

	return rows, nil
}
