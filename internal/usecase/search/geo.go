package search

import (
	"context"
	"fmt"
	"time"

	"github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/search/query"
	"github.com/raspaai/marketsearch/internal/domain/search/result"
	"github.com/raspaai/marketsearch/internal/metrics"
)

// ProductSearch finds shop listings near the query point whose product
// title is similar to the phrase or whose product description contains
// it. Results are ordered by ascending offered price.
func (s *Service) ProductSearch(ctx context.Context, q query.Query) ([]result.Hit, int, error) {
	start := time.Now()

	shopIDs, err := s.eligibleShops(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if len(shopIDs) == 0 {
		metrics.ObserveSearch(metrics.VariantGeoProducts, time.Since(start), 0)
		return nil, 0, nil
	}

	listings, err := s.listings.ShopProductsByShops(ctx, shopIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("geo product search: %w", err)
	}

	products, err := s.productsForListings(ctx, listings)
	if err != nil {
		return nil, 0, err
	}

	cands := make([]candidate, 0, len(listings))
	for _, sp := range listings {
		p, ok := products[sp.ProductID()]
		if !ok {
			continue // dangling product reference
		}
		cands = append(cands, candidate{
			id:        sp.ID(),
			price:     sp.OfferedPrice(),
			createdAt: sp.CreatedAt(),
			simTexts:  []string{p.Title()},
			ftTexts:   []string{p.Description()},
		})
	}

	if q.HasPhrase() {
		cands = s.rank(cands, q.Phrase(), query.GeoThreshold)
	} else {
		orderByPriceAsc(cands)
	}

	hits := listingHits(cands, listings, products)
	metrics.ObserveSearch(metrics.VariantGeoProducts, time.Since(start), len(hits))
	return page(hits, q.Offset(), q.Limit()), len(hits), nil
}

// ComboSearch finds combos near the query point whose name is similar
// to the phrase or whose description contains it, ordered by ascending
// bundle price.
func (s *Service) ComboSearch(ctx context.Context, q query.Query) ([]result.Hit, int, error) {
	start := time.Now()

	shopIDs, err := s.eligibleShops(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if len(shopIDs) == 0 {
		metrics.ObserveSearch(metrics.VariantGeoCombos, time.Since(start), 0)
		return nil, 0, nil
	}

	combos, err := s.listings.CombosByShops(ctx, shopIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("geo combo search: %w", err)
	}

	cands := comboCandidates(combos)
	if q.HasPhrase() {
		cands = s.rank(cands, q.Phrase(), query.GeoThreshold)
	} else {
		orderByPriceAsc(cands)
	}

	hits := comboHits(cands, combos)
	metrics.ObserveSearch(metrics.VariantGeoCombos, time.Since(start), len(hits))
	return page(hits, q.Offset(), q.Limit()), len(hits), nil
}

// eligibleShops runs the geo index lookup and, when the query carries a
// usable shop-name hint, narrows the nearby set to shops whose title is
// similar to the hint. Shops failing the name test are dropped even if
// geographically eligible.
func (s *Service) eligibleShops(ctx context.Context, q query.Query) ([]string, error) {
	ids, err := s.shops.NearbyShopIDs(ctx, q.Point(), q.RadiusKm())
	if err != nil {
		return nil, fmt.Errorf("nearby shops: %w", err)
	}
	if len(ids) == 0 || !q.NarrowsByShopName() {
		return ids, nil
	}

	shops, err := s.shops.ShopsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate nearby shops: %w", err)
	}

	hint := q.ShopNameHint()
	narrowed := make([]string, 0, len(shops))
	for i := range shops {
		if s.scorer.Similarity(shops[i].Title(), hint) > query.ServiceThreshold {
			narrowed = append(narrowed, shops[i].ID())
		}
	}
	return narrowed, nil
}

// productsForListings hydrates the product records behind a listing set.
func (s *Service) productsForListings(
	ctx context.Context, listings []catalog.ShopProduct,
) (map[string]catalog.Product, error) {
	seen := make(map[string]struct{}, len(listings))
	ids := make([]string, 0, len(listings))
	for _, sp := range listings {
		if _, ok := seen[sp.ProductID()]; ok {
			continue
		}
		seen[sp.ProductID()] = struct{}{}
		ids = append(ids, sp.ProductID())
	}

	products, err := s.products.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate products: %w", err)
	}

	byID := make(map[string]catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID()] = products[i]
	}
	return byID, nil
}
