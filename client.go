// Package marketsearch provides an embedded Go client for the
// marketplace proximity search service backed by Valkey or Redis.
//
//	client, _ := marketsearch.New(marketsearch.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	shop, _ := client.Catalog().RegisterShop(ctx, marketsearch.Shop{
//	    Title: "Sharma Store", Lat: 12.97, Lng: 77.59, Active: true,
//	})
//	hits, _ := client.Search().NearbyProducts(ctx, 12.97, 77.59, "apple", nil)
package marketsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raspaai/marketsearch/internal/db"
	dbRedis "github.com/raspaai/marketsearch/internal/db/redis"
	dbValkey "github.com/raspaai/marketsearch/internal/db/valkey"
	catalogrepo "github.com/raspaai/marketsearch/internal/repository/catalog"
	listingrepo "github.com/raspaai/marketsearch/internal/repository/listing"
	cataloguc "github.com/raspaai/marketsearch/internal/usecase/catalog"
	searchuc "github.com/raspaai/marketsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the marketsearch SDK entry point.
type Client struct {
	store      db.Store
	searchSvc  *searchuc.Service
	catalogSvc *cataloguc.Service
}

// New creates a marketsearch Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("marketsearch: database address required (use WithValkey or WithRedis)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("marketsearch: database not ready: %w", err)
	}

	return wireClient(store), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("marketsearch: create valkey store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("marketsearch: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("marketsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store) *Client {
	catRepo := catalogrepo.New(store)
	listRepo := listingrepo.New(store)

	return &Client{
		store:      store,
		searchSvc:  searchuc.New(catRepo, catRepo, catRepo, listRepo),
		catalogSvc: cataloguc.New(catRepo, catRepo, catRepo, listRepo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Catalog returns the catalog management service.
func (c *Client) Catalog() *CatalogService {
	return &CatalogService{svc: c.catalogSvc}
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}
