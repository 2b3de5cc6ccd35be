// Package db defines the storage facade the repositories are written
// against. Implementations live in db/redis and db/valkey.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade by design -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	HashStore
	GeoStore
	SetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// GeoStore maintains a geo index of members and answers radius queries.
type GeoStore interface {
	GeoAdd(ctx context.Context, key string, lng, lat float64, member string) error
	GeoRemove(ctx context.Context, key, member string) error
	// GeoSearch returns members within radiusKm of the reference point,
	// closest first. The boundary is inclusive.
	GeoSearch(ctx context.Context, key string, lng, lat, radiusKm float64) ([]string, error)
}

// SetStore provides membership-set operations.
type SetStore interface {
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}
