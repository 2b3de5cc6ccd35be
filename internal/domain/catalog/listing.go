package catalog

import (
	"time"

	"github.com/raspaai/marketsearch/internal/domain"
)

// ShopProduct binds a product to one shop with its own price and stock
// state. It is the unit ranked by shop-scoped and geo search.
type ShopProduct struct {
	id           string
	shopID       string
	productID    string
	offeredPrice int64
	inStock      bool
	available    bool
	createdAt    time.Time
}

// NewShopProduct validates and creates a shop listing.
func NewShopProduct(
	id, shopID, productID string, offeredPrice int64,
	inStock, available bool, createdAt time.Time,
) (ShopProduct, error) {
	if id == "" || shopID == "" || productID == "" {
		return ShopProduct{}, domain.ErrInvalidRecord
	}
	if offeredPrice < 0 {
		return ShopProduct{}, domain.ErrInvalidRecord
	}
	return ShopProduct{
		id:           id,
		shopID:       shopID,
		productID:    productID,
		offeredPrice: offeredPrice,
		inStock:      inStock,
		available:    available,
		createdAt:    createdAt,
	}, nil
}

// ReconstructShopProduct rebuilds a listing from storage without validation.
func ReconstructShopProduct(
	id, shopID, productID string, offeredPrice int64,
	inStock, available bool, createdAt time.Time,
) ShopProduct {
	return ShopProduct{
		id: id, shopID: shopID, productID: productID,
		offeredPrice: offeredPrice, inStock: inStock, available: available,
		createdAt: createdAt,
	}
}

// ID returns the listing identifier.
func (sp *ShopProduct) ID() string { return sp.id }

// ShopID returns the owning shop identifier.
func (sp *ShopProduct) ShopID() string { return sp.shopID }

// ProductID returns the referenced product identifier.
func (sp *ShopProduct) ProductID() string { return sp.productID }

// OfferedPrice returns the shop's price for the product.
func (sp *ShopProduct) OfferedPrice() int64 { return sp.offeredPrice }

// InStock reports whether the shop currently has the product.
func (sp *ShopProduct) InStock() bool { return sp.inStock }

// Available reports whether the listing is visible to buyers.
func (sp *ShopProduct) Available() bool { return sp.available }

// CreatedAt returns the listing creation time.
func (sp *ShopProduct) CreatedAt() time.Time { return sp.createdAt }
