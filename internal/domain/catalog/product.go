package catalog

import (
	"strings"

	"github.com/raspaai/marketsearch/internal/domain"
)

// Product is a brand-level catalog entry. Shops list products via
// ShopProduct; search scores the product title and description.
type Product struct {
	id          string
	title       string
	description string
	brandID     string
	unit        string
	mrp         int64 // 0 when the brand did not publish one
	isService   bool
}

// NewProduct validates and creates a product.
func NewProduct(id, title, description, brandID, unit string, mrp int64, isService bool) (Product, error) {
	if id == "" || strings.TrimSpace(title) == "" {
		return Product{}, domain.ErrInvalidRecord
	}
	if mrp < 0 {
		return Product{}, domain.ErrInvalidRecord
	}
	return Product{
		id:          id,
		title:       title,
		description: description,
		brandID:     brandID,
		unit:        unit,
		mrp:         mrp,
		isService:   isService,
	}, nil
}

// ReconstructProduct rebuilds a product from storage without validation.
func ReconstructProduct(id, title, description, brandID, unit string, mrp int64, isService bool) Product {
	return Product{
		id: id, title: title, description: description,
		brandID: brandID, unit: unit, mrp: mrp, isService: isService,
	}
}

// ID returns the product identifier.
func (p *Product) ID() string { return p.id }

// Title returns the searchable product title.
func (p *Product) Title() string { return p.title }

// Description returns the searchable product description.
func (p *Product) Description() string { return p.description }

// BrandID returns the owning brand identifier.
func (p *Product) BrandID() string { return p.brandID }

// Unit returns the measurement unit label.
func (p *Product) Unit() string { return p.unit }

// MRP returns the printed maximum retail price, 0 when unset.
func (p *Product) MRP() int64 { return p.mrp }

// IsService reports whether the entry is a service rather than a good.
func (p *Product) IsService() bool { return p.isService }
