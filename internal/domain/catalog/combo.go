package catalog

import (
	"strings"
	"time"

	"github.com/raspaai/marketsearch/internal/domain"
)

// Combo bundles two or more shop listings into a single priced,
// searchable offering.
type Combo struct {
	id           string
	shopID       string
	name         string
	description  string
	offeredPrice int64
	available    bool
	listingIDs   []string
	createdAt    time.Time
}

// NewCombo validates and creates a combo. A combo must bundle at least
// two listings.
func NewCombo(
	id, shopID, name, description string, offeredPrice int64,
	available bool, listingIDs []string, createdAt time.Time,
) (Combo, error) {
	if id == "" || shopID == "" || strings.TrimSpace(name) == "" {
		return Combo{}, domain.ErrInvalidRecord
	}
	if offeredPrice < 0 {
		return Combo{}, domain.ErrInvalidRecord
	}
	if len(listingIDs) < 2 {
		return Combo{}, domain.ErrComboTooSmall
	}
	return Combo{
		id:           id,
		shopID:       shopID,
		name:         name,
		description:  description,
		offeredPrice: offeredPrice,
		available:    available,
		listingIDs:   listingIDs,
		createdAt:    createdAt,
	}, nil
}

// ReconstructCombo rebuilds a combo from storage without validation.
func ReconstructCombo(
	id, shopID, name, description string, offeredPrice int64,
	available bool, listingIDs []string, createdAt time.Time,
) Combo {
	return Combo{
		id: id, shopID: shopID, name: name, description: description,
		offeredPrice: offeredPrice, available: available,
		listingIDs: listingIDs, createdAt: createdAt,
	}
}

// ID returns the combo identifier.
func (c *Combo) ID() string { return c.id }

// ShopID returns the owning shop identifier.
func (c *Combo) ShopID() string { return c.shopID }

// Name returns the searchable combo name.
func (c *Combo) Name() string { return c.name }

// Description returns the searchable combo description.
func (c *Combo) Description() string { return c.description }

// OfferedPrice returns the bundle price.
func (c *Combo) OfferedPrice() int64 { return c.offeredPrice }

// Available reports whether the combo is visible to buyers.
func (c *Combo) Available() bool { return c.available }

// ListingIDs returns the bundled shop-product identifiers.
func (c *Combo) ListingIDs() []string { return c.listingIDs }

// CreatedAt returns the combo creation time.
func (c *Combo) CreatedAt() time.Time { return c.createdAt }
