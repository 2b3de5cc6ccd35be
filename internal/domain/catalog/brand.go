package catalog

import (
	"strings"

	"github.com/raspaai/marketsearch/internal/domain"
)

// Brand owns a catalog of products searchable marketplace-wide.
type Brand struct {
	id       string
	title    string
	username string
	active   bool
}

// NewBrand validates and creates a brand.
func NewBrand(id, title, username string, active bool) (Brand, error) {
	if id == "" || strings.TrimSpace(title) == "" {
		return Brand{}, domain.ErrInvalidRecord
	}
	return Brand{id: id, title: title, username: strings.ToLower(username), active: active}, nil
}

// ReconstructBrand rebuilds a brand from storage without validation.
func ReconstructBrand(id, title, username string, active bool) Brand {
	return Brand{id: id, title: title, username: username, active: active}
}

// ID returns the brand identifier.
func (b *Brand) ID() string { return b.id }

// Title returns the brand display name.
func (b *Brand) Title() string { return b.title }

// Username returns the lowercase public username.
func (b *Brand) Username() string { return b.username }

// Active reports whether the brand is live on the marketplace.
func (b *Brand) Active() bool { return b.active }
