package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/raspaai/marketsearch/internal/domain/catalog"
)

// shopProductToHash converts a listing to a map for HSET.
func shopProductToHash(sp catalog.ShopProduct) map[string]string {
	return map[string]string{
		"id":            sp.ID(),
		"shop_id":       sp.ShopID(),
		"product_id":    sp.ProductID(),
		"offered_price": strconv.FormatInt(sp.OfferedPrice(), 10),
		"in_stock":      strconv.FormatBool(sp.InStock()),
		"available":     strconv.FormatBool(sp.Available()),
		"created_at":    strconv.FormatInt(sp.CreatedAt().UnixNano(), 10),
	}
}

// shopProductFromHash hydrates a listing from an HGETALL result map.
func shopProductFromHash(m map[string]string) (catalog.ShopProduct, error) {
	price, err := strconv.ParseInt(m["offered_price"], 10, 64)
	if err != nil {
		return catalog.ShopProduct{}, fmt.Errorf("invalid offered_price: %w", err)
	}
	createdAt, err := parseUnixNano(m["created_at"])
	if err != nil {
		return catalog.ShopProduct{}, err
	}
	inStock, _ := strconv.ParseBool(m["in_stock"])
	available, _ := strconv.ParseBool(m["available"])
	return catalog.ReconstructShopProduct(
		m["id"], m["shop_id"], m["product_id"], price, inStock, available, createdAt,
	), nil
}

func comboToHash(c catalog.Combo) map[string]string {
	return map[string]string{
		"id":            c.ID(),
		"shop_id":       c.ShopID(),
		"name":          c.Name(),
		"description":   c.Description(),
		"offered_price": strconv.FormatInt(c.OfferedPrice(), 10),
		"available":     strconv.FormatBool(c.Available()),
		"listing_ids":   strings.Join(c.ListingIDs(), ","),
		"created_at":    strconv.FormatInt(c.CreatedAt().UnixNano(), 10),
	}
}

func comboFromHash(m map[string]string) (catalog.Combo, error) {
	price, err := strconv.ParseInt(m["offered_price"], 10, 64)
	if err != nil {
		return catalog.Combo{}, fmt.Errorf("invalid offered_price: %w", err)
	}
	createdAt, err := parseUnixNano(m["created_at"])
	if err != nil {
		return catalog.Combo{}, err
	}
	available, _ := strconv.ParseBool(m["available"])
	var listingIDs []string
	if m["listing_ids"] != "" {
		listingIDs = strings.Split(m["listing_ids"], ",")
	}
	return catalog.ReconstructCombo(
		m["id"], m["shop_id"], m["name"], m["description"],
		price, available, listingIDs, createdAt,
	), nil
}

func parseUnixNano(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at: %w", err)
	}
	return time.Unix(0, n).UTC(), nil
}
