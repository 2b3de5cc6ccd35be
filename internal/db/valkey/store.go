// Package valkey provides the Valkey driver. The command surface the
// repositories need (hashes, geo sorted sets, plain sets) is identical
// to Redis, so the driver shares the rueidis-backed implementation and
// exists as its own package for configuration and future divergence.
package valkey

import (
	"github.com/raspaai/marketsearch/internal/db"
	"github.com/raspaai/marketsearch/internal/db/redis"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Valkey store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store implements db.Store for Valkey.
type Store struct {
	*redis.Store
}

// NewStore creates a Valkey store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	inner, err := redis.NewStore(redis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, err
	}
	return &Store{Store: inner}, nil
}
