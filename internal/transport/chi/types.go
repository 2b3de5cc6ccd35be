package chi

import "time"

// ErrorCode identifies a machine-readable error category.
type ErrorCode string

const (
	// CodeBadRequest marks malformed requests.
	CodeBadRequest ErrorCode = "bad_request"
	// CodeValidationFailed marks requests that parse but fail validation.
	CodeValidationFailed ErrorCode = "validation_failed"
	// CodeShopNotFound marks lookups of unknown shops.
	CodeShopNotFound ErrorCode = "shop_not_found"
	// CodeBrandNotFound marks lookups of unknown brands.
	CodeBrandNotFound ErrorCode = "brand_not_found"
	// CodeProductNotFound marks lookups of unknown products.
	CodeProductNotFound ErrorCode = "product_not_found"
	// CodeNotFound marks lookups of unknown listings or combos.
	CodeNotFound ErrorCode = "not_found"
	// CodeAlreadyExists marks conflicting creates.
	CodeAlreadyExists ErrorCode = "already_exists"
	// CodeInternalError marks unexpected failures.
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchResultItem is one ranked hit on the wire.
type SearchResultItem struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	ShopID    string     `json:"shop_id,omitempty"`
	ProductID string     `json:"product_id,omitempty"`
	Title     string     `json:"title"`
	Price     int64      `json:"price"`
	Score     float64    `json:"score,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SearchResultListResponse is the page envelope for search endpoints.
type SearchResultListResponse struct {
	Items  []SearchResultItem `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ShopRequest is the create/update body for shops.
type ShopRequest struct {
	Title    string  `json:"title"`
	Username string  `json:"username"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Active   bool    `json:"active"`
}

// ShopResponse is a shop on the wire.
type ShopResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Username string  `json:"username"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Active   bool    `json:"active"`
}

// BrandRequest is the create body for brands.
type BrandRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

// BrandResponse is a brand on the wire.
type BrandResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

// ProductRequest is the create body for brand catalog products.
type ProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BrandID     string `json:"brand_id,omitempty"`
	Unit        string `json:"unit,omitempty"`
	MRP         int64  `json:"mrp,omitempty"`
	IsService   bool   `json:"is_service,omitempty"`
}

// ProductResponse is a product on the wire.
type ProductResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	BrandID     string `json:"brand_id,omitempty"`
	Unit        string `json:"unit,omitempty"`
	MRP         int64  `json:"mrp,omitempty"`
	IsService   bool   `json:"is_service,omitempty"`
}

// ListingRequest is the create/update body for shop listings.
type ListingRequest struct {
	ProductID    string `json:"product_id"`
	OfferedPrice int64  `json:"offered_price"`
	InStock      bool   `json:"in_stock"`
	Available    bool   `json:"available"`
}

// ListingResponse is a shop listing on the wire.
type ListingResponse struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	ProductID    string    `json:"product_id"`
	OfferedPrice int64     `json:"offered_price"`
	InStock      bool      `json:"in_stock"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

// ComboRequest is the create body for combos.
type ComboRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	OfferedPrice int64    `json:"offered_price"`
	Available    bool     `json:"available"`
	ListingIDs   []string `json:"listing_ids"`
}

// ComboResponse is a combo on the wire.
type ComboResponse struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	OfferedPrice int64     `json:"offered_price"`
	Available    bool      `json:"available"`
	ListingIDs   []string  `json:"listing_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// HealthResponse is the health report on the wire.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
