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

// ShopProducts searches listings inside a single shop. A blank phrase
// lists the shop's catalog newest first; otherwise the stricter
// in-shop threshold applies and results come back cheapest first.
func (s *Service) ShopProducts(ctx context.Context, shopID string, q query.Query) ([]result.Hit, int, error) {
	start := time.Now()

	if _, err := s.shops.GetShop(ctx, shopID); err != nil {
		return nil, 0, fmt.Errorf("shop product search: %w", err)
	}

	listings, err := s.listings.ShopProductsByShop(ctx, shopID)
	if err != nil {
		return nil, 0, fmt.Errorf("shop product search: %w", err)
	}

	products, err := s.productsForListings(ctx, listings)
	if err != nil {
		return nil, 0, err
	}

	cands := make([]candidate, 0, len(listings))
	for _, sp := range listings {
		p, ok := products[sp.ProductID()]
		if !ok {
			continue
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
		cands = s.rank(cands, q.Phrase(), query.ScopedThreshold)
	} else {
		orderByCreatedDesc(cands)
	}

	hits := listingHits(cands, listings, products)
	metrics.ObserveSearch(metrics.VariantShopProducts, time.Since(start), len(hits))
	return page(hits, q.Offset(), q.Limit()), len(hits), nil
}

// ShopCombos searches combos inside a single shop with the same rules
// as ShopProducts.
func (s *Service) ShopCombos(ctx context.Context, shopID string, q query.Query) ([]result.Hit, int, error) {
	start := time.Now()

	if _, err := s.shops.GetShop(ctx, shopID); err != nil {
		return nil, 0, fmt.Errorf("shop combo search: %w", err)
	}

	combos, err := s.listings.CombosByShop(ctx, shopID)
	if err != nil {
		return nil, 0, fmt.Errorf("shop combo search: %w", err)
	}

	cands := comboCandidates(combos)
	if q.HasPhrase() {
		cands = s.rank(cands, q.Phrase(), query.ScopedThreshold)
	} else {
		orderByCreatedDesc(cands)
	}

	hits := comboHits(cands, combos)
	metrics.ObserveSearch(metrics.VariantShopCombos, time.Since(start), len(hits))
	return page(hits, q.Offset(), q.Limit()), len(hits), nil
}

// BrandProducts searches a brand's catalog by title similarity alone;
// descriptions are not consulted for this variant. Services use a
// higher threshold than goods. Prices here are the brand MRP, not a
// shop's offered price.
func (s *Service) BrandProducts(
	ctx context.Context, brandID string, q query.Query, servicesOnly bool,
) ([]result.Hit, int, error) {
	start := time.Now()

	if _, err := s.brands.GetBrand(ctx, brandID); err != nil {
		return nil, 0, fmt.Errorf("brand product search: %w", err)
	}

	products, err := s.products.ProductsByBrand(ctx, brandID)
	if err != nil {
		return nil, 0, fmt.Errorf("brand product search: %w", err)
	}

	if servicesOnly {
		services := make([]catalog.Product, 0, len(products))
		for i := range products {
			if products[i].IsService() {
				services = append(services, products[i])
			}
		}
		products = services
	}

	cands := productCandidates(products)
	if q.HasPhrase() {
		threshold := query.ScopedThreshold
		if servicesOnly {
			threshold = query.ServiceThreshold
		}
		cands = s.rank(cands, q.Phrase(), threshold)
	} else {
		orderByPriceAsc(cands)
	}

	hits := productHits(cands, products)
	metrics.ObserveSearch(metrics.VariantBrandProducts, time.Since(start), len(hits))
	return page(hits, q.Offset(), q.Limit()), len(hits), nil
}
