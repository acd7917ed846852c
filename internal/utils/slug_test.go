// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Wool Trouser", "wool-trouser"},
		{"  Garment-Dyed  Chino ", "garment-dyed-chino"},
		{"Archive / SS24!", "archive-ss24"},
		{"ALL CAPS", "all-caps"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestFallbackSlug(t *testing.T) {
	assert.Equal(t, "wool-trouser-34567890", FallbackSlug("Wool Trouser", "abcdef1234567890"))
	assert.Equal(t, "wool-trouser-1a2b", FallbackSlug("Wool Trouser", "1a2b"))
	assert.Equal(t, "wool-trouser", FallbackSlug("Wool Trouser", ""))
	assert.Equal(t, "34567890", FallbackSlug("", "abcdef1234567890"))
	assert.Equal(t, "product", FallbackSlug("", ""))

	// Deterministic: same inputs, same slug, so links keep resolving.
	assert.Equal(t,
		FallbackSlug("Wool Trouser", "abcdef1234567890"),
		FallbackSlug("Wool Trouser", "abcdef1234567890"))
}
