package catalog

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront-service/internal/models"
)

// DefaultRelatedLimit caps "you might also like" suggestions.
const DefaultRelatedLimit = 4

// Query filters and sorts the catalog per spec and returns a fresh slice.
// Predicates are applied in a fixed order (collection, search, colors,
// sizes, price) so the working set shrinks early; membership is order
// independent. The sort is stable: ties keep the catalog's relative order,
// which may encode manual merchandising priority.
func Query(catalog []models.Product, spec Spec) []models.Product {
	spec = spec.normalize()

	filtered := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if !matches(p, spec) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, spec.SortKey)
	return filtered
}

func matches(p models.Product, spec Spec) bool {
	if spec.IsGenderCollection && spec.CollectionSlug != "" {
		gender := strings.ToLower(string(p.Gender))
		if gender != strings.ToLower(spec.CollectionSlug) && gender != string(models.GenderUnisex) {
			return false
		}
	} else if spec.CategoryID != "" && !strings.EqualFold(spec.CategoryID, "all") {
		if p.Category != spec.CategoryID {
			return false
		}
	}

	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			return false
		}
	}

	if len(spec.SelectedColors) > 0 && !intersects(p.Colors, spec.SelectedColors) {
		return false
	}
	if len(spec.SelectedSizes) > 0 && !intersects(p.Sizes, spec.SelectedSizes) {
		return false
	}

	if spec.MinPrice != nil && p.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && p.Price > *spec.MaxPrice {
		return false
	}
	return true
}

// intersects reports whether the two label sets share at least one value.
// Comparison is exact: the catalog's stored casing is authoritative.
func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortName:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) < 0
		})
	case models.SortNewest:
		// Ids are issued monotonically, so descending id order approximates
		// recency without a created-at field on the product.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	default:
		// "featured" and unrecognized keys keep catalog order.
	}
}

// ComputeFacets derives the available filter options from the full,
// unfiltered catalog. Distinct values appear in first-seen catalog order;
// an empty catalog yields empty sets and a nil price range.
func ComputeFacets(catalog []models.Product) models.FacetSummary {
	summary := models.FacetSummary{
		Categories: []string{},
		Colors:     []string{},
		Sizes:      []string{},
	}

	seenCategory := map[string]bool{}
	seenColor := map[string]bool{}
	seenSize := map[string]bool{}

	for i, p := range catalog {
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			summary.Categories = append(summary.Categories, p.Category)
		}
		for _, c := range p.Colors {
			if !seenColor[c] {
				seenColor[c] = true
				summary.Colors = append(summary.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if !seenSize[s] {
				seenSize[s] = true
				summary.Sizes = append(summary.Sizes, s)
			}
		}

		if i == 0 {
			summary.PriceRange = &models.PriceRange{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price < summary.PriceRange.Min {
			summary.PriceRange.Min = p.Price
		}
		if p.Price > summary.PriceRange.Max {
			summary.PriceRange.Max = p.Price
		}
	}
	return summary
}

// RelatedProducts returns up to limit products sharing the given product's
// category, excluding the product itself, in catalog order. It never pads
// with unrelated items; limit <= 0 falls back to DefaultRelatedLimit.
func RelatedProducts(catalog []models.Product, product models.Product, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related := make([]models.Product, 0, limit)
	for _, p := range catalog {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}

// DiscountPercent computes the rounded discount implied by a compare-at
// price, clamped to zero when the reference price is absent or not greater
// than the selling price.
func DiscountPercent(p models.Product) int {
	if p.CompareAtPrice == nil || *p.CompareAtPrice <= p.Price || *p.CompareAtPrice <= 0 {
		return 0
	}
	return int(math.Round((*p.CompareAtPrice - p.Price) / *p.CompareAtPrice * 100))
}
