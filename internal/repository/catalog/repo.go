// Package catalog persists shops, brands and products as flat hashes,
// with an auxiliary geo index over active shop locations, a username
// reservation per shop or brand and a membership set per brand.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/raspaai/marketsearch/internal/db"
	"github.com/raspaai/marketsearch/internal/domain"
	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// store is the consumer interface for catalog persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	GeoAdd(ctx context.Context, key string, lng, lat float64, member string) error
	GeoRemove(ctx context.Context, key, member string) error
	GeoSearch(ctx context.Context, key string, lng, lat, radiusKm float64) ([]string, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the catalog read/write contracts.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func shopKey(id string) string    { return domain.KeyPrefix + "shop:" + id }
func brandKey(id string) string   { return domain.KeyPrefix + "brand:" + id }
func productKey(id string) string { return domain.KeyPrefix + "product:" + id }

func brandProductsKey(brandID string) string {
	return domain.KeyPrefix + "brand:" + brandID + ":products"
}

// Usernames reserve their lowercase form, so the taken check is
// case-insensitive.
func usernameKey(username string) string {
	return domain.KeyPrefix + "username:" + strings.ToLower(username)
}

func usernameReservation(username, ownerID, ownerKind string) db.HashSetItem {
	return db.HashSetItem{
		Key:    usernameKey(username),
		Fields: map[string]string{"owner_id": ownerID, "owner_kind": ownerKind},
	}
}

// UpsertShop writes the shop hash together with its username
// reservation and keeps the geo index in step: active shops are
// indexed at their location, inactive shops are removed so proximity
// search never sees them.
func (r *Repo) UpsertShop(ctx context.Context, shop domcat.Shop) error {
	items := []db.HashSetItem{{Key: shopKey(shop.ID()), Fields: shopToHash(shop)}}
	if shop.Username() != "" {
		items = append(items, usernameReservation(shop.Username(), shop.ID(), "shop"))
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("upsert shop %s: %w", shop.ID(), err)
	}

	loc := shop.Location()
	if shop.Active() {
		if err := r.store.GeoAdd(ctx, domain.ShopGeoKey, loc.Lng(), loc.Lat(), shop.ID()); err != nil {
			return fmt.Errorf("index shop %s: %w", shop.ID(), err)
		}
		return nil
	}
	if err := r.store.GeoRemove(ctx, domain.ShopGeoKey, shop.ID()); err != nil {
		return fmt.Errorf("unindex shop %s: %w", shop.ID(), err)
	}
	return nil
}

// GetShop fetches one shop.
func (r *Repo) GetShop(ctx context.Context, id string) (domcat.Shop, error) {
	m, err := r.store.HGetAll(ctx, shopKey(id))
	if err != nil {
		return domcat.Shop{}, fmt.Errorf("get shop %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcat.Shop{}, domain.ErrShopNotFound
	}
	return shopFromHash(m)
}

// ShopsByIDs hydrates shops in one round-trip. Missing ids are skipped.
func (r *Repo) ShopsByIDs(ctx context.Context, ids []string) ([]domcat.Shop, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = shopKey(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("shops by ids: %w", err)
	}
	shops := make([]domcat.Shop, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		shop, err := shopFromHash(m)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, nil
}

// NearbyShopIDs returns ids of active shops within radiusKm of the
// point, closest first. Only active shops are present in the geo index.
func (r *Repo) NearbyShopIDs(ctx context.Context, point geo.Point, radiusKm float64) ([]string, error) {
	ids, err := r.store.GeoSearch(ctx, domain.ShopGeoKey, point.Lng(), point.Lat(), radiusKm)
	if err != nil {
		return nil, fmt.Errorf("nearby shops: %w", err)
	}
	return ids, nil
}

// UpsertBrand writes the brand hash together with its username
// reservation.
func (r *Repo) UpsertBrand(ctx context.Context, brand domcat.Brand) error {
	items := []db.HashSetItem{{Key: brandKey(brand.ID()), Fields: brandToHash(brand)}}
	if brand.Username() != "" {
		items = append(items, usernameReservation(brand.Username(), brand.ID(), "brand"))
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("upsert brand %s: %w", brand.ID(), err)
	}
	return nil
}

// UsernameTaken reports whether any shop or brand already holds the
// username.
func (r *Repo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	taken, err := r.store.Exists(ctx, usernameKey(username))
	if err != nil {
		return false, fmt.Errorf("username %s: %w", username, err)
	}
	return taken, nil
}

// GetBrand fetches one brand.
func (r *Repo) GetBrand(ctx context.Context, id string) (domcat.Brand, error) {
	m, err := r.store.HGetAll(ctx, brandKey(id))
	if err != nil {
		return domcat.Brand{}, fmt.Errorf("get brand %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcat.Brand{}, domain.ErrBrandNotFound
	}
	return brandFromHash(m), nil
}

// UpsertProduct writes the product hash and records brand membership.
func (r *Repo) UpsertProduct(ctx context.Context, p domcat.Product) error {
	if err := r.store.HSet(ctx, productKey(p.ID()), productToHash(p)); err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID(), err)
	}
	if p.BrandID() != "" {
		if err := r.store.SAdd(ctx, brandProductsKey(p.BrandID()), p.ID()); err != nil {
			return fmt.Errorf("index product %s: %w", p.ID(), err)
		}
	}
	return nil
}

// GetProduct fetches one product.
func (r *Repo) GetProduct(ctx context.Context, id string) (domcat.Product, error) {
	m, err := r.store.HGetAll(ctx, productKey(id))
	if err != nil {
		return domcat.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcat.Product{}, domain.ErrProductNotFound
	}
	return productFromHash(m)
}

// ProductsByIDs hydrates products in one round-trip. Missing ids are skipped.
func (r *Repo) ProductsByIDs(ctx context.Context, ids []string) ([]domcat.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("products by ids: %w", err)
	}
	products := make([]domcat.Product, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		p, err := productFromHash(m)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// ProductsByBrand returns the brand's product set.
func (r *Repo) ProductsByBrand(ctx context.Context, brandID string) ([]domcat.Product, error) {
	ids, err := r.store.SMembers(ctx, brandProductsKey(brandID))
	if err != nil {
		return nil, fmt.Errorf("brand %s products: %w", brandID, err)
	}
	return r.ProductsByIDs(ctx, ids)
}
