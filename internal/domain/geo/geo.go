// Package geo holds the WGS84 point type and distance math used by
// proximity search.
package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

// SRID is the spatial reference for all stored locations (WGS84).
const SRID = 4326

// EarthRadiusKm is the mean radius of Earth used for Haversine distance.
const EarthRadiusKm = 6371.0

// DefaultRadiusKm is the search radius applied when the caller does not
// supply one.
const DefaultRadiusKm = 5.0

// Point is a WGS84 coordinate pair.
type Point struct {
	pt *geom.Point
}

// NewPoint builds a point from latitude/longitude degrees.
// Returns false when either coordinate is out of range.
func NewPoint(lat, lng float64) (Point, bool) {
	if !ValidCoordinates(lat, lng) {
		return Point{}, false
	}
	pt := geom.NewPointFlat(geom.XY, []float64{lng, lat})
	pt.SetSRID(SRID)
	return Point{pt: pt}, true
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.pt.Y() }

// Lng returns the longitude in degrees.
func (p Point) Lng() float64 { return p.pt.X() }

// IsZero reports whether the point was never set.
func (p Point) IsZero() bool { return p.pt == nil }

// ValidCoordinates checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// HaversineKm returns the great-circle distance in kilometers between two points.
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lng() - a.Lng()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// WithinRadius reports whether b lies within radiusKm of a.
// The boundary is inclusive: a point at exactly radiusKm matches.
func WithinRadius(a, b Point, radiusKm float64) bool {
	return HaversineKm(a, b) <= radiusKm
}
