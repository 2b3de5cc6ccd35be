// Package listing persists shop-products and combos as flat hashes with
// a membership set per shop, so shop-scoped and geo-scoped reads avoid
// full keyspace scans.
package listing

import (
	"context"
	"fmt"

	"github.com/raspaai/marketsearch/internal/domain"
	"github.com/raspaai/marketsearch/internal/domain/catalog"
)

// store is the consumer interface for listing persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the listing read/write contracts.
type Repo struct {
	store store
}

// New creates a listing repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func listingKey(id string) string { return domain.KeyPrefix + "listing:" + id }
func comboKey(id string) string   { return domain.KeyPrefix + "combo:" + id }

func shopListingsKey(shopID string) string {
	return domain.KeyPrefix + "shop:" + shopID + ":listings"
}

func shopCombosKey(shopID string) string {
	return domain.KeyPrefix + "shop:" + shopID + ":combos"
}

// UpsertShopProduct writes the listing hash and records shop membership.
func (r *Repo) UpsertShopProduct(ctx context.Context, sp catalog.ShopProduct) error {
	if err := r.store.HSet(ctx, listingKey(sp.ID()), shopProductToHash(sp)); err != nil {
		return fmt.Errorf("upsert listing %s: %w", sp.ID(), err)
	}
	if err := r.store.SAdd(ctx, shopListingsKey(sp.ShopID()), sp.ID()); err != nil {
		return fmt.Errorf("index listing %s: %w", sp.ID(), err)
	}
	return nil
}

// GetShopProduct fetches one listing.
func (r *Repo) GetShopProduct(ctx context.Context, id string) (catalog.ShopProduct, error) {
	m, err := r.store.HGetAll(ctx, listingKey(id))
	if err != nil {
		return catalog.ShopProduct{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	if len(m) == 0 {
		return catalog.ShopProduct{}, domain.ErrNotFound
	}
	return shopProductFromHash(m)
}

// DeleteShopProduct removes a listing and its shop membership.
func (r *Repo) DeleteShopProduct(ctx context.Context, shopID, id string) error {
	if err := r.store.Del(ctx, listingKey(id)); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	if err := r.store.SRem(ctx, shopListingsKey(shopID), id); err != nil {
		return fmt.Errorf("unindex listing %s: %w", id, err)
	}
	return nil
}

// ShopProductsByShop returns every listing of one shop.
func (r *Repo) ShopProductsByShop(ctx context.Context, shopID string) ([]catalog.ShopProduct, error) {
	return r.ShopProductsByShops(ctx, []string{shopID})
}

// ShopProductsByShops returns all listings carried by the given shops.
// Order is unspecified; ranking imposes the final order.
func (r *Repo) ShopProductsByShops(ctx context.Context, shopIDs []string) ([]catalog.ShopProduct, error) {
	ids, err := r.memberUnion(ctx, shopIDs, shopListingsKey)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = listingKey(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("listings by shops: %w", err)
	}

	listings := make([]catalog.ShopProduct, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue // listing removed between SMEMBERS and HGETALL
		}
		sp, err := shopProductFromHash(m)
		if err != nil {
			return nil, err
		}
		listings = append(listings, sp)
	}
	return listings, nil
}

// UpsertCombo writes the combo hash and records shop membership.
func (r *Repo) UpsertCombo(ctx context.Context, c catalog.Combo) error {
	if err := r.store.HSet(ctx, comboKey(c.ID()), comboToHash(c)); err != nil {
		return fmt.Errorf("upsert combo %s: %w", c.ID(), err)
	}
	if err := r.store.SAdd(ctx, shopCombosKey(c.ShopID()), c.ID()); err != nil {
		return fmt.Errorf("index combo %s: %w", c.ID(), err)
	}
	return nil
}

// GetCombo fetches one combo.
func (r *Repo) GetCombo(ctx context.Context, id string) (catalog.Combo, error) {
	m, err := r.store.HGetAll(ctx, comboKey(id))
	if err != nil {
		return catalog.Combo{}, fmt.Errorf("get combo %s: %w", id, err)
	}
	if len(m) == 0 {
		return catalog.Combo{}, domain.ErrNotFound
	}
	return comboFromHash(m)
}

// CombosByShop returns every combo of one shop.
func (r *Repo) CombosByShop(ctx context.Context, shopID string) ([]catalog.Combo, error) {
	return r.CombosByShops(ctx, []string{shopID})
}

// CombosByShops returns all combos offered by the given shops.
func (r *Repo) CombosByShops(ctx context.Context, shopIDs []string) ([]catalog.Combo, error) {
	ids, err := r.memberUnion(ctx, shopIDs, shopCombosKey)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = comboKey(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("combos by shops: %w", err)
	}

	combos := make([]catalog.Combo, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		c, err := comboFromHash(m)
		if err != nil {
			return nil, err
		}
		combos = append(combos, c)
	}
	return combos, nil
}

// memberUnion collects set members across shops, preserving shop order.
func (r *Repo) memberUnion(
	ctx context.Context, shopIDs []string, key func(string) string,
) ([]string, error) {
	var ids []string
	for _, shopID := range shopIDs {
		members, err := r.store.SMembers(ctx, key(shopID))
		if err != nil {
			return nil, fmt.Errorf("shop %s members: %w", shopID, err)
		}
		ids = append(ids, members...)
	}
	return ids, nil
}
