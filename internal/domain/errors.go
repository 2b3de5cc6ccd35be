package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrShopNotFound signals a missing shop.
	ErrShopNotFound = errors.New("shop not found")
	// ErrBrandNotFound signals a missing brand.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCoordinates signals an out-of-range latitude or longitude.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrInvalidRadius signals a non-positive search radius.
	ErrInvalidRadius = errors.New("invalid radius")
	// ErrInvalidRecord signals a record that fails domain validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrComboTooSmall signals a combo bundling fewer than two listings.
	ErrComboTooSmall = errors.New("combo must bundle at least two listings")
)
