// Package catalog implements the catalog query engine: pure filtering,
// sorting, and facet derivation over an in-memory product list. The engine
// never mutates its inputs and never returns errors; malformed query fields
// degrade to "filter not applied" so a broken filter control cannot blank
// the page.
package catalog

import (
	"strings"

	"storefront-service/internal/models"
)

// Spec describes one catalog query. The zero value matches the whole
// catalog in its original (merchandised) order.
type Spec struct {
	// CollectionSlug selects a category by slug, or a gender collection
	// when IsGenderCollection is set. Empty or "all" applies no filter.
	CollectionSlug     string
	IsGenderCollection bool

	// CategoryID filters by resolved category id. Takes effect only when
	// IsGenderCollection is false.
	CategoryID string

	// Search is a free-text term matched against title, description, and
	// category name. Whitespace-only terms are ignored.
	Search string

	SelectedColors []string
	SelectedSizes  []string

	// MinPrice/MaxPrice bound the inclusive price range. Nil means unbounded.
	MinPrice *float64
	MaxPrice *float64

	SortKey models.SortKey
}

// normalize cleans up a spec once at the engine boundary: trims the search
// term, drops empty facet selections, and discards inverted or negative
// price bounds.
func (s Spec) normalize() Spec {
	s.CollectionSlug = strings.TrimSpace(s.CollectionSlug)
	s.Search = strings.TrimSpace(s.Search)

	s.SelectedColors = compactStrings(s.SelectedColors)
	s.SelectedSizes = compactStrings(s.SelectedSizes)

	if s.MinPrice != nil && *s.MinPrice < 0 {
		s.MinPrice = nil
	}
	if s.MaxPrice != nil && *s.MaxPrice < 0 {
		s.MaxPrice = nil
	}
	if s.MinPrice != nil && s.MaxPrice != nil && *s.MinPrice > *s.MaxPrice {
		// Inverted range: treat as no price filter rather than an empty result.
		s.MinPrice = nil
		s.MaxPrice = nil
	}
	return s
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
