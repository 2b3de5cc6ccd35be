package catalog

import (
	"strings"

	"github.com/raspaai/marketsearch/internal/domain"
	"github.com/raspaai/marketsearch/internal/domain/geo"
)

// Shop is a physical storefront with a location on the map.
// Only active shops are eligible for proximity search.
type Shop struct {
	id       string
	title    string
	username string
	location geo.Point
	active   bool
}

// NewShop validates and creates a shop.
func NewShop(id, title, username string, location geo.Point, active bool) (Shop, error) {
	if id == "" || strings.TrimSpace(title) == "" {
		return Shop{}, domain.ErrInvalidRecord
	}
	if location.IsZero() {
		return Shop{}, domain.ErrInvalidCoordinates
	}
	return Shop{
		id:       id,
		title:    title,
		username: strings.ToLower(username),
		location: location,
		active:   active,
	}, nil
}

// ReconstructShop rebuilds a shop from storage without validation.
func ReconstructShop(id, title, username string, location geo.Point, active bool) Shop {
	return Shop{id: id, title: title, username: username, location: location, active: active}
}

// ID returns the shop identifier.
func (s *Shop) ID() string { return s.id }

// Title returns the shop display name.
func (s *Shop) Title() string { return s.title }

// Username returns the lowercase public username.
func (s *Shop) Username() string { return s.username }

// Location returns the shop coordinates.
func (s *Shop) Location() geo.Point { return s.location }

// Active reports whether the shop is live on the marketplace.
func (s *Shop) Active() bool { return s.active }
