package models

// Gender tags a product for gender-scoped collections.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// SortKey selects the comparator applied to catalog query results.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// Product represents a sellable item in the catalog. Products are loaded
// once at startup and never mutated during a session.
type Product struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"`
	Category       string   `json:"category"`
	Gender         Gender   `json:"gender,omitempty"`
	Colors         []string `json:"colors"`
	Sizes          []string `json:"sizes"`
	Images         []string `json:"images"`
	Inventory      int      `json:"inventory"`
	Tags           []string `json:"tags,omitempty"`
}

// PrimaryImage returns the first image, or empty when the product has none.
// Missing images render with a placeholder upstream.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// OnSale reports whether the product carries a discount reference price.
func (p Product) OnSale() bool {
	return p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price
}

// Category groups products for browsing routes. Static, loaded with the catalog.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// PriceRange is an inclusive [Min, Max] price bound pair.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetSummary lists the filter options available across the full catalog.
// It is derived from the unfiltered catalog, independent of any query state;
// PriceRange is nil for an empty catalog.
type FacetSummary struct {
	Categories []string    `json:"categories"`
	Colors     []string    `json:"colors"`
	Sizes      []string    `json:"sizes"`
	PriceRange *PriceRange `json:"priceRange"`
}

// Catalog bundles products and categories as loaded from the fixture file
// or fetched from the remote backend.
type Catalog struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
