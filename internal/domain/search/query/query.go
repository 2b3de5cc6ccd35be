// Package query holds the validated per-call search query value object.
package query

import (
	"strings"

	"github.com/raspaai/marketsearch/internal/domain"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// Similarity thresholds per search variant. These materially change
// result sets and must not drift.
const (
	// GeoThreshold applies to geo shop-product and geo combo search.
	GeoThreshold = 0.1
	// ScopedThreshold applies to in-shop product, in-shop combo and
	// brand product search.
	ScopedThreshold = 0.2
	// ServiceThreshold applies to brand service search and the
	// shop-name hint pre-filter.
	ServiceThreshold = 0.3
)

// MinShopNameHintLen is the exclusive length cutoff below which a
// shop-name hint is ignored.
const MinShopNameHintLen = 3

// Pagination limits.
const (
	MaxPhraseLength = 256
	DefaultLimit    = 20
	MaxLimit        = 100
)

// Query is a validated search query. The zero phrase (empty or
// whitespace-only) disables text scoring entirely.
type Query struct {
	phrase   string
	point    geo.Point
	radiusKm float64
	shopName string
	limit    int
	offset   int
}

// NewGeo validates and builds a geo-scoped query. Radius 0 means the
// default of 5 km; a negative radius is rejected.
func NewGeo(phrase string, lat, lng, radiusKm float64, shopName string, limit, offset int) (Query, error) {
	point, ok := geo.NewPoint(lat, lng)
	if !ok {
		return Query{}, domain.ErrInvalidCoordinates
	}
	if radiusKm < 0 {
		return Query{}, domain.ErrInvalidRadius
	}
	if radiusKm == 0 {
		radiusKm = geo.DefaultRadiusKm
	}
	q, err := NewScoped(phrase, limit, offset)
	if err != nil {
		return Query{}, err
	}
	q.point = point
	q.radiusKm = radiusKm
	q.shopName = shopName
	return q, nil
}

// NewScoped validates and builds a shop- or brand-scoped query with no
// geo component.
func NewScoped(phrase string, limit, offset int) (Query, error) {
	if len(phrase) > MaxPhraseLength {
		return Query{}, domain.ErrInvalidRecord
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Query{phrase: phrase, limit: limit, offset: offset}, nil
}

// Phrase returns the raw search phrase.
func (q *Query) Phrase() string { return q.phrase }

// HasPhrase reports whether the phrase carries any non-whitespace text.
// A blank phrase passes candidates through unscored.
func (q *Query) HasPhrase() bool { return strings.TrimSpace(q.phrase) != "" }

// Point returns the reference coordinates (zero for scoped queries).
func (q *Query) Point() geo.Point { return q.point }

// RadiusKm returns the geo radius in kilometers.
func (q *Query) RadiusKm() float64 { return q.radiusKm }

// ShopNameHint returns the optional free-text shop name narrowing the
// eligible shop set.
func (q *Query) ShopNameHint() string { return q.shopName }

// NarrowsByShopName reports whether the hint is long enough to apply.
// Hints of three characters or fewer are ignored.
func (q *Query) NarrowsByShopName() bool { return len(q.shopName) > MinShopNameHintLen }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// Offset returns the page offset.
func (q *Query) Offset() int { return q.offset }
