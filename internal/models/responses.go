package models

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}

// ProductListResponse is the storefront product listing envelope. Filters
// always describe the full catalog, not the filtered result.
type ProductListResponse struct {
	Success bool          `json:"success"`
	Data    []Product     `json:"data"`
	Total   int           `json:"total"`
	Filters *FacetSummary `json:"filters,omitempty"`
}

// ProductDetail pairs a product with its "you might also like" companions.
type ProductDetail struct {
	Product         Product   `json:"product"`
	RelatedProducts []Product `json:"relatedProducts"`
}

type ProductDetailResponse struct {
	Success bool          `json:"success"`
	Data    ProductDetail `json:"data"`
}

type CategoryListResponse struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
}

type FacetsResponse struct {
	Success bool         `json:"success"`
	Data    FacetSummary `json:"data"`
}
