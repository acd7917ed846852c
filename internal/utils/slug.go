// internal/utils/slug.go
package utils

import (
	"strings"
)

// Slugify lowercases s and collapses every non-alphanumeric run into a single
// hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// FallbackSlug derives a deterministic slug from the title and id for rows
// the upstream shipped without one. The id suffix keeps two same-titled
// products from colliding, so old links resolve the same way on every load.
func FallbackSlug(title, id string) string {
	base := Slugify(title)
	suffix := Slugify(id)
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}

	switch {
	case base != "" && suffix != "":
		return base + "-" + suffix
	case base != "":
		return base
	case suffix != "":
		return suffix
	default:
		return "product"
	}
}
