package search

import (
	"context"

	"github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// ShopDirectory resolves shops and answers proximity queries.
type ShopDirectory interface {
	GetShop(ctx context.Context, id string) (catalog.Shop, error)
	ShopsByIDs(ctx context.Context, ids []string) ([]catalog.Shop, error)
	NearbyShopIDs(ctx context.Context, point geo.Point, radiusKm float64) ([]string, error)
}

// BrandReader resolves brands for brand-scoped search.
type BrandReader interface {
	GetBrand(ctx context.Context, id string) (catalog.Brand, error)
}

// ProductReader reads brand catalog products.
type ProductReader interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]catalog.Product, error)
	ProductsByBrand(ctx context.Context, brandID string) ([]catalog.Product, error)
}

// ListingReader reads shop-products and combos by shop membership.
type ListingReader interface {
	ShopProductsByShop(ctx context.Context, shopID string) ([]catalog.ShopProduct, error)
	ShopProductsByShops(ctx context.Context, shopIDs []string) ([]catalog.ShopProduct, error)
	CombosByShop(ctx context.Context, shopID string) ([]catalog.Combo, error)
	CombosByShops(ctx context.Context, shopIDs []string) ([]catalog.Combo, error)
}

// Scorer computes the two text match signals. Any implementation
// honoring the contract (identical strings score 1, disjoint strings
// score ~0, monotonic in shared substrings) can be plugged in.
type Scorer interface {
	Similarity(text, phrase string) float64
	FullTextMatches(text, phrase string) bool
}
