package marketsearch

import (
	"context"
	"fmt"
	"time"

	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
	cataloguc "github.com/raspaai/marketsearch/internal/usecase/catalog"
)

// CatalogService manages shops, brands, products, listings and combos.
type CatalogService struct {
	svc *cataloguc.Service
}

// Shop is a storefront with a location. ID is assigned on registration.
type Shop struct {
	ID       string
	Title    string
	Username string
	Lat      float64
	Lng      float64
	Active   bool
}

// Brand owns a marketplace-wide product catalog.
type Brand struct {
	ID       string
	Title    string
	Username string
	Active   bool
}

// Product is a brand catalog entry.
type Product struct {
	ID          string
	Title       string
	Description string
	BrandID     string
	Unit        string
	MRP         int64
	IsService   bool
}

// Listing puts a product on a shop's shelf at the shop's price.
type Listing struct {
	ID           string
	ShopID       string
	ProductID    string
	OfferedPrice int64
	InStock      bool
	Available    bool
	CreatedAt    time.Time
}

// Combo bundles two or more listings of one shop at a single price.
type Combo struct {
	ID           string
	ShopID       string
	Name         string
	Description  string
	OfferedPrice int64
	Available    bool
	ListingIDs   []string
	CreatedAt    time.Time
}

// RegisterShop creates a shop. The returned Shop carries the assigned id.
func (c *CatalogService) RegisterShop(ctx context.Context, s Shop) (Shop, error) {
	shop, err := c.svc.RegisterShop(ctx, cataloguc.ShopInput{
		Title: s.Title, Username: s.Username, Lat: s.Lat, Lng: s.Lng, Active: s.Active,
	})
	if err != nil {
		return Shop{}, fmt.Errorf("register shop: %w", err)
	}
	return fromShop(shop), nil
}

// UpdateShop rewrites an existing shop.
func (c *CatalogService) UpdateShop(ctx context.Context, s Shop) (Shop, error) {
	shop, err := c.svc.UpdateShop(ctx, s.ID, cataloguc.ShopInput{
		Title: s.Title, Username: s.Username, Lat: s.Lat, Lng: s.Lng, Active: s.Active,
	})
	if err != nil {
		return Shop{}, fmt.Errorf("update shop: %w", err)
	}
	return fromShop(shop), nil
}

// RegisterBrand creates a brand.
func (c *CatalogService) RegisterBrand(ctx context.Context, b Brand) (Brand, error) {
	brand, err := c.svc.RegisterBrand(ctx, cataloguc.BrandInput{
		Title: b.Title, Username: b.Username, Active: b.Active,
	})
	if err != nil {
		return Brand{}, fmt.Errorf("register brand: %w", err)
	}
	return Brand{
		ID: brand.ID(), Title: brand.Title(), Username: brand.Username(), Active: brand.Active(),
	}, nil
}

// RegisterProduct creates a catalog product.
func (c *CatalogService) RegisterProduct(ctx context.Context, p Product) (Product, error) {
	prod, err := c.svc.RegisterProduct(ctx, cataloguc.ProductInput{
		Title: p.Title, Description: p.Description, BrandID: p.BrandID,
		Unit: p.Unit, MRP: p.MRP, IsService: p.IsService,
	})
	if err != nil {
		return Product{}, fmt.Errorf("register product: %w", err)
	}
	return fromProduct(prod), nil
}

// CreateListing puts a product on a shop's shelf.
func (c *CatalogService) CreateListing(ctx context.Context, l Listing) (Listing, error) {
	sp, err := c.svc.CreateListing(ctx, cataloguc.ListingInput{
		ShopID: l.ShopID, ProductID: l.ProductID, OfferedPrice: l.OfferedPrice,
		InStock: l.InStock, Available: l.Available,
	})
	if err != nil {
		return Listing{}, fmt.Errorf("create listing: %w", err)
	}
	return fromListing(sp), nil
}

// UpdateListing rewrites an existing listing.
func (c *CatalogService) UpdateListing(ctx context.Context, l Listing) (Listing, error) {
	sp, err := c.svc.UpdateListing(ctx, l.ID, cataloguc.ListingInput{
		ShopID: l.ShopID, ProductID: l.ProductID, OfferedPrice: l.OfferedPrice,
		InStock: l.InStock, Available: l.Available,
	})
	if err != nil {
		return Listing{}, fmt.Errorf("update listing: %w", err)
	}
	return fromListing(sp), nil
}

// RemoveListing deletes a listing.
func (c *CatalogService) RemoveListing(ctx context.Context, shopID, listingID string) error {
	if err := c.svc.RemoveListing(ctx, shopID, listingID); err != nil {
		return fmt.Errorf("remove listing: %w", err)
	}
	return nil
}

// CreateCombo bundles listings of one shop into a combo.
func (c *CatalogService) CreateCombo(ctx context.Context, cb Combo) (Combo, error) {
	combo, err := c.svc.CreateCombo(ctx, cataloguc.ComboInput{
		ShopID: cb.ShopID, Name: cb.Name, Description: cb.Description,
		OfferedPrice: cb.OfferedPrice, Available: cb.Available, ListingIDs: cb.ListingIDs,
	})
	if err != nil {
		return Combo{}, fmt.Errorf("create combo: %w", err)
	}
	return Combo{
		ID: combo.ID(), ShopID: combo.ShopID(), Name: combo.Name(),
		Description: combo.Description(), OfferedPrice: combo.OfferedPrice(),
		Available: combo.Available(), ListingIDs: combo.ListingIDs(),
		CreatedAt: combo.CreatedAt(),
	}, nil
}

func fromShop(s domcat.Shop) Shop {
	loc := s.Location()
	return Shop{
		ID: s.ID(), Title: s.Title(), Username: s.Username(),
		Lat: loc.Lat(), Lng: loc.Lng(), Active: s.Active(),
	}
}

func fromProduct(p domcat.Product) Product {
	return Product{
		ID: p.ID(), Title: p.Title(), Description: p.Description(),
		BrandID: p.BrandID(), Unit: p.Unit(), MRP: p.MRP(), IsService: p.IsService(),
	}
}

func fromListing(sp domcat.ShopProduct) Listing {
	return Listing{
		ID: sp.ID(), ShopID: sp.ShopID(), ProductID: sp.ProductID(),
		OfferedPrice: sp.OfferedPrice(), InStock: sp.InStock(),
		Available: sp.Available(), CreatedAt: sp.CreatedAt(),
	}
}
