package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/raspaai/marketsearch/internal/domain"
	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// --- Mocks ---

type mockShops struct {
	shop          domcat.Shop
	getErr        error
	upsertErr     error
	upserted      []domcat.Shop
	usernameTaken bool
	checkedNames  []string
}

func (m *mockShops) UpsertShop(_ context.Context, s domcat.Shop) error {
	m.upserted = append(m.upserted, s)
	return m.upsertErr
}

func (m *mockShops) GetShop(_ context.Context, _ string) (domcat.Shop, error) {
	return m.shop, m.getErr
}

func (m *mockShops) UsernameTaken(_ context.Context, username string) (bool, error) {
	m.checkedNames = append(m.checkedNames, username)
	return m.usernameTaken, nil
}

type mockBrands struct {
	brand         domcat.Brand
	getErr        error
	upsertErr     error
	upserted      []domcat.Brand
	usernameTaken bool
}

func (m *mockBrands) UpsertBrand(_ context.Context, b domcat.Brand) error {
	m.upserted = append(m.upserted, b)
	return m.upsertErr
}

func (m *mockBrands) GetBrand(_ context.Context, _ string) (domcat.Brand, error) {
	return m.brand, m.getErr
}

func (m *mockBrands) UsernameTaken(_ context.Context, _ string) (bool, error) {
	return m.usernameTaken, nil
}

type mockProducts struct {
	product   domcat.Product
	getErr    error
	upsertErr error
	upserted  []domcat.Product
}

func (m *mockProducts) UpsertProduct(_ context.Context, p domcat.Product) error {
	m.upserted = append(m.upserted, p)
	return m.upsertErr
}

func (m *mockProducts) GetProduct(_ context.Context, _ string) (domcat.Product, error) {
	return m.product, m.getErr
}

type mockListings struct {
	byID       map[string]domcat.ShopProduct
	getErr     error
	upsertErr  error
	deleteErr  error
	upserted   []domcat.ShopProduct
	combos     []domcat.Combo
	deletedIDs []string
}

func (m *mockListings) UpsertShopProduct(_ context.Context, sp domcat.ShopProduct) error {
	m.upserted = append(m.upserted, sp)
	return m.upsertErr
}

func (m *mockListings) GetShopProduct(_ context.Context, id string) (domcat.ShopProduct, error) {
	if m.getErr != nil {
		return domcat.ShopProduct{}, m.getErr
	}
	sp, ok := m.byID[id]
	if !ok {
		return domcat.ShopProduct{}, domain.ErrNotFound
	}
	return sp, nil
}

func (m *mockListings) DeleteShopProduct(_ context.Context, _, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.deleteErr
}

func (m *mockListings) UpsertCombo(_ context.Context, c domcat.Combo) error {
	m.combos = append(m.combos, c)
	return m.upsertErr
}

func newTestService(shops *mockShops, brands *mockBrands, products *mockProducts, listings *mockListings) *Service {
	n := 0
	return New(shops, brands, products, listings).
		WithIDFunc(func() string { n++; return "id-" + string(rune('0'+n)) }).
		WithClock(func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) })
}

func validShop(t *testing.T, id string) domcat.Shop {
	t.Helper()
	point, ok := geo.NewPoint(12.97, 77.59)
	if !ok {
		t.Fatal("geo.NewPoint failed for valid coordinates")
	}
	shop, err := domcat.NewShop(id, "Sharma Store", "sharma", point, true)
	if err != nil {
		t.Fatalf("NewShop: %v", err)
	}
	return shop
}

// --- Tests ---

func TestRegisterShop(t *testing.T) {
	shops := &mockShops{}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	shop, err := svc.RegisterShop(context.Background(), ShopInput{
		Title: "Sharma Store", Username: "Sharma", Lat: 12.97, Lng: 77.59, Active: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shop.ID() == "" {
		t.Error("expected generated id")
	}
	if shop.Username() != "sharma" {
		t.Errorf("expected lowercase username, got %q", shop.Username())
	}
	if len(shops.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(shops.upserted))
	}
}

func TestRegisterShop_BadCoordinates(t *testing.T) {
	svc := newTestService(&mockShops{}, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterShop(context.Background(), ShopInput{
		Title: "Nowhere", Lat: 91, Lng: 0,
	})
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestRegisterShop_EmptyTitle(t *testing.T) {
	svc := newTestService(&mockShops{}, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterShop(context.Background(), ShopInput{
		Title: "   ", Lat: 12.97, Lng: 77.59,
	})
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestRegisterShop_UsernameTaken(t *testing.T) {
	shops := &mockShops{usernameTaken: true}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterShop(context.Background(), ShopInput{
		Title: "Sharma Store", Username: "sharma", Lat: 12.97, Lng: 77.59, Active: true,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(shops.upserted) != 0 {
		t.Error("expected no upsert for a taken username")
	}
}

func TestRegisterShop_NoUsernameSkipsCheck(t *testing.T) {
	shops := &mockShops{usernameTaken: true}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterShop(context.Background(), ShopInput{
		Title: "Sharma Store", Lat: 12.97, Lng: 77.59, Active: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shops.checkedNames) != 0 {
		t.Errorf("expected no uniqueness check, got %v", shops.checkedNames)
	}
}

func TestRegisterBrand_UsernameTaken(t *testing.T) {
	brands := &mockBrands{usernameTaken: true}
	svc := newTestService(&mockShops{}, brands, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterBrand(context.Background(), BrandInput{
		Title: "Acme Goods", Username: "acme", Active: true,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(brands.upserted) != 0 {
		t.Error("expected no upsert for a taken username")
	}
}

func TestUpdateShop_KeepsOwnUsername(t *testing.T) {
	// The shop's current username is reserved by the shop itself, so an
	// update that keeps it must not be treated as a conflict.
	shops := &mockShops{shop: validShop(t, "shop-1"), usernameTaken: true}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	shop, err := svc.UpdateShop(context.Background(), "shop-1", ShopInput{
		Title: "Sharma Store", Username: "Sharma", Lat: 12.97, Lng: 77.59, Active: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shop.Username() != "sharma" {
		t.Errorf("unexpected username %q", shop.Username())
	}
	if len(shops.checkedNames) != 0 {
		t.Errorf("expected no uniqueness check for unchanged username, got %v", shops.checkedNames)
	}
}

func TestUpdateShop_NewUsernameTaken(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1"), usernameTaken: true}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.UpdateShop(context.Background(), "shop-1", ShopInput{
		Title: "Sharma Store", Username: "freshmart", Lat: 12.97, Lng: 77.59, Active: true,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(shops.upserted) != 0 {
		t.Error("expected no upsert for a taken username")
	}
}

func TestUpdateShop_NotFound(t *testing.T) {
	shops := &mockShops{getErr: domain.ErrShopNotFound}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, &mockListings{})

	_, err := svc.UpdateShop(context.Background(), "missing", ShopInput{
		Title: "Store", Lat: 12.97, Lng: 77.59,
	})
	if !errors.Is(err, domain.ErrShopNotFound) {
		t.Fatalf("expected ErrShopNotFound, got %v", err)
	}
	if len(shops.upserted) != 0 {
		t.Error("expected no upsert after failed lookup")
	}
}

func TestRegisterProduct_UnknownBrand(t *testing.T) {
	brands := &mockBrands{getErr: domain.ErrBrandNotFound}
	svc := newTestService(&mockShops{}, brands, &mockProducts{}, &mockListings{})

	_, err := svc.RegisterProduct(context.Background(), ProductInput{
		Title: "Red Apple", BrandID: "missing",
	})
	if !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

func TestRegisterProduct_NoBrandIsAllowed(t *testing.T) {
	products := &mockProducts{}
	svc := newTestService(&mockShops{}, &mockBrands{getErr: domain.ErrBrandNotFound}, products, &mockListings{})

	p, err := svc.RegisterProduct(context.Background(), ProductInput{Title: "Loose Rice", Unit: "kg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BrandID() != "" {
		t.Errorf("expected empty brand id, got %q", p.BrandID())
	}
	if len(products.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(products.upserted))
	}
}

func TestCreateListing(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1")}
	listings := &mockListings{}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, listings)

	sp, err := svc.CreateListing(context.Background(), ListingInput{
		ShopID: "shop-1", ProductID: "prod-1", OfferedPrice: 4500, InStock: true, Available: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.CreatedAt().IsZero() {
		t.Error("expected creation timestamp")
	}
	if len(listings.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(listings.upserted))
	}
}

func TestCreateListing_UnknownProduct(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1")}
	products := &mockProducts{getErr: domain.ErrProductNotFound}
	listings := &mockListings{}
	svc := newTestService(shops, &mockBrands{}, products, listings)

	_, err := svc.CreateListing(context.Background(), ListingInput{
		ShopID: "shop-1", ProductID: "missing", OfferedPrice: 100,
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(listings.upserted) != 0 {
		t.Error("expected no upsert after failed product lookup")
	}
}

func TestUpdateListing_ShopMismatch(t *testing.T) {
	existing := domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, time.Now())
	listings := &mockListings{byID: map[string]domcat.ShopProduct{"l1": existing}}
	svc := newTestService(&mockShops{}, &mockBrands{}, &mockProducts{}, listings)

	_, err := svc.UpdateListing(context.Background(), "l1", ListingInput{
		ShopID: "other-shop", OfferedPrice: 200,
	})
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestUpdateListing_KeepsIdentityAndCreatedAt(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, created)
	listings := &mockListings{byID: map[string]domcat.ShopProduct{"l1": existing}}
	svc := newTestService(&mockShops{}, &mockBrands{}, &mockProducts{}, listings)

	sp, err := svc.UpdateListing(context.Background(), "l1", ListingInput{
		ShopID: "shop-1", OfferedPrice: 250, InStock: false, Available: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.ID() != "l1" || sp.ProductID() != "p1" {
		t.Errorf("identity changed: id=%q product=%q", sp.ID(), sp.ProductID())
	}
	if !sp.CreatedAt().Equal(created) {
		t.Errorf("creation time changed: %v", sp.CreatedAt())
	}
	if sp.OfferedPrice() != 250 {
		t.Errorf("expected price 250, got %d", sp.OfferedPrice())
	}
}

func TestRemoveListing_WrongShop(t *testing.T) {
	existing := domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, time.Now())
	listings := &mockListings{byID: map[string]domcat.ShopProduct{"l1": existing}}
	svc := newTestService(&mockShops{}, &mockBrands{}, &mockProducts{}, listings)

	err := svc.RemoveListing(context.Background(), "other-shop", "l1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(listings.deletedIDs) != 0 {
		t.Error("expected no delete for wrong shop")
	}
}

func TestCreateCombo(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1")}
	listings := &mockListings{byID: map[string]domcat.ShopProduct{
		"l1": domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, time.Now()),
		"l2": domcat.ReconstructShopProduct("l2", "shop-1", "p2", 200, true, true, time.Now()),
	}}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, listings)

	c, err := svc.CreateCombo(context.Background(), ComboInput{
		ShopID: "shop-1", Name: "Breakfast Pack", OfferedPrice: 250,
		Available: true, ListingIDs: []string{"l1", "l2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.ListingIDs()) != 2 {
		t.Errorf("expected 2 listings, got %d", len(c.ListingIDs()))
	}
	if len(listings.combos) != 1 {
		t.Fatalf("expected 1 combo upsert, got %d", len(listings.combos))
	}
}

func TestCreateCombo_TooFewListings(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1")}
	listings := &mockListings{byID: map[string]domcat.ShopProduct{
		"l1": domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, time.Now()),
	}}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, listings)

	_, err := svc.CreateCombo(context.Background(), ComboInput{
		ShopID: "shop-1", Name: "Solo", OfferedPrice: 100, ListingIDs: []string{"l1"},
	})
	if !errors.Is(err, domain.ErrComboTooSmall) {
		t.Fatalf("expected ErrComboTooSmall, got %v", err)
	}
}

func TestCreateCombo_ForeignListing(t *testing.T) {
	shops := &mockShops{shop: validShop(t, "shop-1")}
	listings := &mockListings{byID: map[string]domcat.ShopProduct{
		"l1": domcat.ReconstructShopProduct("l1", "shop-1", "p1", 100, true, true, time.Now()),
		"l2": domcat.ReconstructShopProduct("l2", "shop-2", "p2", 200, true, true, time.Now()),
	}}
	svc := newTestService(shops, &mockBrands{}, &mockProducts{}, listings)

	_, err := svc.CreateCombo(context.Background(), ComboInput{
		ShopID: "shop-1", Name: "Mixed", OfferedPrice: 300, ListingIDs: []string{"l1", "l2"},
	})
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if len(listings.combos) != 0 {
		t.Error("expected no combo upsert")
	}
}
