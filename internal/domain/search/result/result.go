// Package result holds ranked search hit value objects.
package result

import "time"

// Kind distinguishes what a hit refers to.
type Kind string

const (
	// KindShopProduct marks a per-shop product listing hit.
	KindShopProduct Kind = "shop_product"
	// KindCombo marks a combo hit.
	KindCombo Kind = "combo"
	// KindProduct marks a brand catalog product hit.
	KindProduct Kind = "product"
)

// Hit is a single ranked search hit.
type Hit struct {
	id        string
	kind      Kind
	shopID    string
	productID string
	title     string
	price     int64
	score     float64
	createdAt time.Time
}

// New creates a hit.
func New(
	id string, kind Kind, shopID, productID, title string,
	price int64, score float64, createdAt time.Time,
) Hit {
	return Hit{
		id: id, kind: kind, shopID: shopID, productID: productID,
		title: title, price: price, score: score, createdAt: createdAt,
	}
}

// ID returns the hit identifier (listing, combo or product id).
func (h *Hit) ID() string { return h.id }

// Kind returns what the hit refers to.
func (h *Hit) Kind() Kind { return h.kind }

// ShopID returns the owning shop id, empty for brand catalog hits.
func (h *Hit) ShopID() string { return h.shopID }

// ProductID returns the referenced product id, empty for combos.
func (h *Hit) ProductID() string { return h.productID }

// Title returns the matched display text.
func (h *Hit) Title() string { return h.title }

// Price returns the offered price used for ordering.
func (h *Hit) Price() int64 { return h.price }

// Score returns the trigram similarity of the matched text, 0 when the
// hit matched via full text or the phrase was blank.
func (h *Hit) Score() float64 { return h.score }

// CreatedAt returns the record creation time.
func (h *Hit) CreatedAt() time.Time { return h.createdAt }
