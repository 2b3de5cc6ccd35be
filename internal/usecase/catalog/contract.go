package catalog

import (
	"context"

	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
)

// ShopStore persists shops and their geo index entries.
type ShopStore interface {
	UpsertShop(ctx context.Context, shop domcat.Shop) error
	GetShop(ctx context.Context, id string) (domcat.Shop, error)
	// UsernameTaken reports whether the username is reserved anywhere
	// on the marketplace, shop or brand alike.
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// BrandStore persists brands.
type BrandStore interface {
	UpsertBrand(ctx context.Context, brand domcat.Brand) error
	GetBrand(ctx context.Context, id string) (domcat.Brand, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// ProductStore persists brand catalog products.
type ProductStore interface {
	UpsertProduct(ctx context.Context, p domcat.Product) error
	GetProduct(ctx context.Context, id string) (domcat.Product, error)
}

// ListingStore persists shop listings and combos.
type ListingStore interface {
	UpsertShopProduct(ctx context.Context, sp domcat.ShopProduct) error
	GetShopProduct(ctx context.Context, id string) (domcat.ShopProduct, error)
	DeleteShopProduct(ctx context.Context, shopID, id string) error
	UpsertCombo(ctx context.Context, c domcat.Combo) error
}
