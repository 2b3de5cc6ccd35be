// Package catalog implements the write side of the marketplace: shop,
// brand and product registration plus listing and combo management.
// Every write keeps the search index consistent with the record.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raspaai/marketsearch/internal/domain"
	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// ShopInput carries the fields a caller supplies for a shop.
type ShopInput struct {
	Title    string
	Username string
	Lat      float64
	Lng      float64
	Active   bool
}

// BrandInput carries the fields a caller supplies for a brand.
type BrandInput struct {
	Title    string
	Username string
	Active   bool
}

// ProductInput carries the fields a caller supplies for a product.
type ProductInput struct {
	Title       string
	Description string
	BrandID     string
	Unit        string
	MRP         int64
	IsService   bool
}

// ListingInput carries the fields a caller supplies for a shop listing.
type ListingInput struct {
	ShopID       string
	ProductID    string
	OfferedPrice int64
	InStock      bool
	Available    bool
}

// ComboInput carries the fields a caller supplies for a combo.
type ComboInput struct {
	ShopID       string
	Name         string
	Description  string
	OfferedPrice int64
	Available    bool
	ListingIDs   []string
}

// Service coordinates catalog writes across the stores.
type Service struct {
	shops    ShopStore
	brands   BrandStore
	products ProductStore
	listings ListingStore
	newID    func() string
	now      func() time.Time
}

// New creates a catalog service with UUID identifiers and wall-clock
// timestamps.
func New(shops ShopStore, brands BrandStore, products ProductStore, listings ListingStore) *Service {
	return &Service{
		shops:    shops,
		brands:   brands,
		products: products,
		listings: listings,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// WithIDFunc replaces the identifier generator.
func (s *Service) WithIDFunc(fn func() string) *Service {
	s.newID = fn
	return s
}

// WithClock replaces the timestamp source.
func (s *Service) WithClock(fn func() time.Time) *Service {
	s.now = fn
	return s
}

// RegisterShop creates a shop and places it on the geo index when
// active. Usernames are unique across the marketplace.
func (s *Service) RegisterShop(ctx context.Context, in ShopInput) (domcat.Shop, error) {
	point, ok := geo.NewPoint(in.Lat, in.Lng)
	if !ok {
		return domcat.Shop{}, domain.ErrInvalidCoordinates
	}

	if in.Username != "" {
		taken, err := s.shops.UsernameTaken(ctx, in.Username)
		if err != nil {
			return domcat.Shop{}, fmt.Errorf("register shop: %w", err)
		}
		if taken {
			return domcat.Shop{}, fmt.Errorf("register shop: username %q: %w", in.Username, domain.ErrAlreadyExists)
		}
	}

	shop, err := domcat.NewShop(s.newID(), in.Title, in.Username, point, in.Active)
	if err != nil {
		return domcat.Shop{}, fmt.Errorf("register shop: %w", err)
	}
	if err := s.shops.UpsertShop(ctx, shop); err != nil {
		return domcat.Shop{}, fmt.Errorf("register shop: %w", err)
	}
	return shop, nil
}

// UpdateShop rewrites an existing shop. Deactivating or moving a shop
// updates its geo index entry in the same call.
func (s *Service) UpdateShop(ctx context.Context, id string, in ShopInput) (domcat.Shop, error) {
	current, err := s.shops.GetShop(ctx, id)
	if err != nil {
		return domcat.Shop{}, fmt.Errorf("update shop: %w", err)
	}

	point, ok := geo.NewPoint(in.Lat, in.Lng)
	if !ok {
		return domcat.Shop{}, domain.ErrInvalidCoordinates
	}

	// A shop keeps its own username; only a change contends for a new one.
	if in.Username != "" && strings.ToLower(in.Username) != current.Username() {
		taken, err := s.shops.UsernameTaken(ctx, in.Username)
		if err != nil {
			return domcat.Shop{}, fmt.Errorf("update shop: %w", err)
		}
		if taken {
			return domcat.Shop{}, fmt.Errorf("update shop: username %q: %w", in.Username, domain.ErrAlreadyExists)
		}
	}

	shop, err := domcat.NewShop(id, in.Title, in.Username, point, in.Active)
	if err != nil {
		return domcat.Shop{}, fmt.Errorf("update shop: %w", err)
	}
	if err := s.shops.UpsertShop(ctx, shop); err != nil {
		return domcat.Shop{}, fmt.Errorf("update shop: %w", err)
	}
	return shop, nil
}

// RegisterBrand creates a brand. Usernames are unique across the
// marketplace.
func (s *Service) RegisterBrand(ctx context.Context, in BrandInput) (domcat.Brand, error) {
	if in.Username != "" {
		taken, err := s.brands.UsernameTaken(ctx, in.Username)
		if err != nil {
			return domcat.Brand{}, fmt.Errorf("register brand: %w", err)
		}
		if taken {
			return domcat.Brand{}, fmt.Errorf("register brand: username %q: %w", in.Username, domain.ErrAlreadyExists)
		}
	}

	brand, err := domcat.NewBrand(s.newID(), in.Title, in.Username, in.Active)
	if err != nil {
		return domcat.Brand{}, fmt.Errorf("register brand: %w", err)
	}
	if err := s.brands.UpsertBrand(ctx, brand); err != nil {
		return domcat.Brand{}, fmt.Errorf("register brand: %w", err)
	}
	return brand, nil
}

// RegisterProduct creates a catalog product. A non-empty brand
// reference must resolve.
func (s *Service) RegisterProduct(ctx context.Context, in ProductInput) (domcat.Product, error) {
	if in.BrandID != "" {
		if _, err := s.brands.GetBrand(ctx, in.BrandID); err != nil {
			return domcat.Product{}, fmt.Errorf("register product: %w", err)
		}
	}

	p, err := domcat.NewProduct(s.newID(), in.Title, in.Description, in.BrandID, in.Unit, in.MRP, in.IsService)
	if err != nil {
		return domcat.Product{}, fmt.Errorf("register product: %w", err)
	}
	if err := s.products.UpsertProduct(ctx, p); err != nil {
		return domcat.Product{}, fmt.Errorf("register product: %w", err)
	}
	return p, nil
}

// CreateListing puts a product on a shop's shelf. Both the shop and
// the product must exist.
func (s *Service) CreateListing(ctx context.Context, in ListingInput) (domcat.ShopProduct, error) {
	if _, err := s.shops.GetShop(ctx, in.ShopID); err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("create listing: %w", err)
	}
	if _, err := s.products.GetProduct(ctx, in.ProductID); err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("create listing: %w", err)
	}

	sp, err := domcat.NewShopProduct(
		s.newID(), in.ShopID, in.ProductID, in.OfferedPrice,
		in.InStock, in.Available, s.now(),
	)
	if err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("create listing: %w", err)
	}
	if err := s.listings.UpsertShopProduct(ctx, sp); err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("create listing: %w", err)
	}
	return sp, nil
}

// UpdateListing rewrites an existing listing, keeping its identity and
// creation time.
func (s *Service) UpdateListing(ctx context.Context, id string, in ListingInput) (domcat.ShopProduct, error) {
	current, err := s.listings.GetShopProduct(ctx, id)
	if err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("update listing: %w", err)
	}
	if current.ShopID() != in.ShopID {
		return domcat.ShopProduct{}, domain.ErrInvalidRecord
	}

	sp, err := domcat.NewShopProduct(
		id, in.ShopID, current.ProductID(), in.OfferedPrice,
		in.InStock, in.Available, current.CreatedAt(),
	)
	if err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("update listing: %w", err)
	}
	if err := s.listings.UpsertShopProduct(ctx, sp); err != nil {
		return domcat.ShopProduct{}, fmt.Errorf("update listing: %w", err)
	}
	return sp, nil
}

// RemoveListing deletes a listing and its membership index entry.
func (s *Service) RemoveListing(ctx context.Context, shopID, id string) error {
	current, err := s.listings.GetShopProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("remove listing: %w", err)
	}
	if current.ShopID() != shopID {
		return domain.ErrNotFound
	}
	if err := s.listings.DeleteShopProduct(ctx, shopID, id); err != nil {
		return fmt.Errorf("remove listing: %w", err)
	}
	return nil
}

// CreateCombo bundles listings of one shop into a priced combo. Every
// bundled listing must exist and belong to that shop.
func (s *Service) CreateCombo(ctx context.Context, in ComboInput) (domcat.Combo, error) {
	if _, err := s.shops.GetShop(ctx, in.ShopID); err != nil {
		return domcat.Combo{}, fmt.Errorf("create combo: %w", err)
	}

	for _, listingID := range in.ListingIDs {
		sp, err := s.listings.GetShopProduct(ctx, listingID)
		if err != nil {
			return domcat.Combo{}, fmt.Errorf("create combo: listing %s: %w", listingID, err)
		}
		if sp.ShopID() != in.ShopID {
			return domcat.Combo{}, fmt.Errorf("create combo: listing %s: %w", listingID, domain.ErrInvalidRecord)
		}
	}

	c, err := domcat.NewCombo(
		s.newID(), in.ShopID, in.Name, in.Description,
		in.OfferedPrice, in.Available, in.ListingIDs, s.now(),
	)
	if err != nil {
		return domcat.Combo{}, fmt.Errorf("create combo: %w", err)
	}
	if err := s.listings.UpsertCombo(ctx, c); err != nil {
		return domcat.Combo{}, fmt.Errorf("create combo: %w", err)
	}
	return c, nil
}
