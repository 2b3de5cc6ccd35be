package redis

import (
	"context"

	"github.com/raspaai/marketsearch/internal/db"
)

// GeoAdd registers a member at the given longitude/latitude.
func (s *Store) GeoAdd(ctx context.Context, key string, lng, lat float64, member string) error {
	cmd := s.b().Geoadd().Key(key).
		LongitudeLatitudeMember().
		LongitudeLatitudeMember(lng, lat, member).
		Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpGeoAdd, Err: err}
	}
	return nil
}

// GeoRemove drops a member from the geo index. Geo indexes are sorted
// sets underneath, so removal is a plain ZREM.
func (s *Store) GeoRemove(ctx context.Context, key, member string) error {
	cmd := s.b().Zrem().Key(key).Member(member).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpZRem, Err: err}
	}
	return nil
}

// GeoSearch returns members within radiusKm of the reference point,
// closest first. The server treats the boundary as inclusive.
func (s *Store) GeoSearch(ctx context.Context, key string, lng, lat, radiusKm float64) ([]string, error) {
	cmd := s.b().Geosearch().Key(key).
		Fromlonlat(lng, lat).
		Byradius(radiusKm).Km().
		Asc().
		Build()
	members, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpGeoSearch, Err: err}
	}
	return members, nil
}
