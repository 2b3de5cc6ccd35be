package catalog

import (
	"fmt"
	"strconv"

	"github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// shopToHash converts a domain Shop to a map for HSET.
func shopToHash(shop catalog.Shop) map[string]string {
	return map[string]string{
		"id":       shop.ID(),
		"title":    shop.Title(),
		"username": shop.Username(),
		"lat":      strconv.FormatFloat(shop.Location().Lat(), 'f', -1, 64),
		"lng":      strconv.FormatFloat(shop.Location().Lng(), 'f', -1, 64),
		"active":   strconv.FormatBool(shop.Active()),
	}
}

// shopFromHash hydrates a domain Shop from an HGETALL result map.
func shopFromHash(m map[string]string) (catalog.Shop, error) {
	lat, err := strconv.ParseFloat(m["lat"], 64)
	if err != nil {
		return catalog.Shop{}, fmt.Errorf("invalid lat: %w", err)
	}
	lng, err := strconv.ParseFloat(m["lng"], 64)
	if err != nil {
		return catalog.Shop{}, fmt.Errorf("invalid lng: %w", err)
	}
	point, ok := geo.NewPoint(lat, lng)
	if !ok {
		return catalog.Shop{}, fmt.Errorf("coordinates out of range: %s,%s", m["lat"], m["lng"])
	}
	active, _ := strconv.ParseBool(m["active"])
	return catalog.ReconstructShop(m["id"], m["title"], m["username"], point, active), nil
}

func brandToHash(brand catalog.Brand) map[string]string {
	return map[string]string{
		"id":       brand.ID(),
		"title":    brand.Title(),
		"username": brand.Username(),
		"active":   strconv.FormatBool(brand.Active()),
	}
}

func brandFromHash(m map[string]string) catalog.Brand {
	active, _ := strconv.ParseBool(m["active"])
	return catalog.ReconstructBrand(m["id"], m["title"], m["username"], active)
}

func productToHash(p catalog.Product) map[string]string {
	return map[string]string{
		"id":          p.ID(),
		"title":       p.Title(),
		"description": p.Description(),
		"brand_id":    p.BrandID(),
		"unit":        p.Unit(),
		"mrp":         strconv.FormatInt(p.MRP(), 10),
		"is_service":  strconv.FormatBool(p.IsService()),
	}
}

func productFromHash(m map[string]string) (catalog.Product, error) {
	mrp, err := strconv.ParseInt(m["mrp"], 10, 64)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid mrp: %w", err)
	}
	isService, _ := strconv.ParseBool(m["is_service"])
	return catalog.ReconstructProduct(
		m["id"], m["title"], m["description"], m["brand_id"], m["unit"], mrp, isService,
	), nil
}
