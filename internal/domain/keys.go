package domain

// KeyPrefix namespaces every key the service writes.
const KeyPrefix = "msrch:"

// ShopGeoKey is the geo index holding active shop locations.
const ShopGeoKey = KeyPrefix + "shops:geo"
