package marketsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/raspaai/marketsearch/internal/domain/search/query"
	"github.com/raspaai/marketsearch/internal/domain/search/result"
	searchuc "github.com/raspaai/marketsearch/internal/usecase/search"
)

// SearchService executes search queries.
type SearchService struct {
	svc *searchuc.Service
}

// SearchOptions configures a search query. The zero value means the
// defaults: 5 km radius, first page of 20 results.
type SearchOptions struct {
	RadiusKm     float64
	ShopName     string
	Limit        int
	Offset       int
	ServicesOnly bool
}

// SearchResult is a single ranked hit.
type SearchResult struct {
	ID        string
	Kind      string
	ShopID    string
	ProductID string
	Title     string
	Price     int64
	Score     float64
	CreatedAt time.Time
}

// NearbyProducts searches shop listings around a point. An empty
// phrase lists everything nearby cheapest first.
func (s *SearchService) NearbyProducts(
	ctx context.Context, lat, lng float64, phrase string, opts *SearchOptions,
) ([]SearchResult, error) {
	q, err := geoQuery(lat, lng, phrase, opts)
	if err != nil {
		return nil, fmt.Errorf("nearby products: %w", err)
	}
	hits, _, err := s.svc.ProductSearch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("nearby products: %w", err)
	}
	return fromHits(hits), nil
}

// NearbyCombos searches combos around a point.
func (s *SearchService) NearbyCombos(
	ctx context.Context, lat, lng float64, phrase string, opts *SearchOptions,
) ([]SearchResult, error) {
	q, err := geoQuery(lat, lng, phrase, opts)
	if err != nil {
		return nil, fmt.Errorf("nearby combos: %w", err)
	}
	hits, _, err := s.svc.ComboSearch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("nearby combos: %w", err)
	}
	return fromHits(hits), nil
}

// ShopProducts searches listings inside one shop. An empty phrase
// lists the catalog newest first.
func (s *SearchService) ShopProducts(
	ctx context.Context, shopID, phrase string, opts *SearchOptions,
) ([]SearchResult, error) {
	q, err := scopedQuery(phrase, opts)
	if err != nil {
		return nil, fmt.Errorf("shop products: %w", err)
	}
	hits, _, err := s.svc.ShopProducts(ctx, shopID, q)
	if err != nil {
		return nil, fmt.Errorf("shop products: %w", err)
	}
	return fromHits(hits), nil
}

// ShopCombos searches combos inside one shop.
func (s *SearchService) ShopCombos(
	ctx context.Context, shopID, phrase string, opts *SearchOptions,
) ([]SearchResult, error) {
	q, err := scopedQuery(phrase, opts)
	if err != nil {
		return nil, fmt.Errorf("shop combos: %w", err)
	}
	hits, _, err := s.svc.ShopCombos(ctx, shopID, q)
	if err != nil {
		return nil, fmt.Errorf("shop combos: %w", err)
	}
	return fromHits(hits), nil
}

// BrandProducts searches a brand's catalog by title similarity.
func (s *SearchService) BrandProducts(
	ctx context.Context, brandID, phrase string, opts *SearchOptions,
) ([]SearchResult, error) {
	q, err := scopedQuery(phrase, opts)
	if err != nil {
		return nil, fmt.Errorf("brand products: %w", err)
	}
	servicesOnly := opts != nil && opts.ServicesOnly
	hits, _, err := s.svc.BrandProducts(ctx, brandID, q, servicesOnly)
	if err != nil {
		return nil, fmt.Errorf("brand products: %w", err)
	}
	return fromHits(hits), nil
}

func geoQuery(lat, lng float64, phrase string, opts *SearchOptions) (query.Query, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}
	return query.NewGeo(phrase, lat, lng, opts.RadiusKm, opts.ShopName, opts.Limit, opts.Offset)
}

func scopedQuery(phrase string, opts *SearchOptions) (query.Query, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}
	return query.NewScoped(phrase, opts.Limit, opts.Offset)
}

func fromHits(hits []result.Hit) []SearchResult {
	out := make([]SearchResult, len(hits))
	for i := range hits {
		h := &hits[i]
		out[i] = SearchResult{
			ID:        h.ID(),
			Kind:      string(h.Kind()),
			ShopID:    h.ShopID(),
			ProductID: h.ProductID(),
			Title:     h.Title(),
			Price:     h.Price(),
			Score:     h.Score(),
			CreatedAt: h.CreatedAt(),
		}
	}
	return out
}
