package geo

import (
	"math"
	"testing"
)

func mustPoint(t *testing.T, lat, lng float64) Point {
	t.Helper()
	p, ok := NewPoint(lat, lng)
	if !ok {
		t.Fatalf("NewPoint(%f, %f) rejected valid coordinates", lat, lng)
	}
	return p
}

func TestNewPoint_Valid(t *testing.T) {
	p := mustPoint(t, 12.9716, 77.5946)
	if p.Lat() != 12.9716 || p.Lng() != 77.5946 {
		t.Errorf("unexpected coordinates: %f, %f", p.Lat(), p.Lng())
	}
	if p.IsZero() {
		t.Error("expected non-zero point")
	}
}

func TestNewPoint_Invalid(t *testing.T) {
	tests := []struct {
		lat, lng float64
	}{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}
	for _, tc := range tests {
		if _, ok := NewPoint(tc.lat, tc.lng); ok {
			t.Errorf("NewPoint(%f, %f) accepted out-of-range coordinates", tc.lat, tc.lng)
		}
	}
}

func TestNewPoint_Boundaries(t *testing.T) {
	for _, tc := range []struct{ lat, lng float64 }{
		{90, 180}, {-90, -180}, {0, 0},
	} {
		if _, ok := NewPoint(tc.lat, tc.lng); !ok {
			t.Errorf("NewPoint(%f, %f) rejected boundary coordinates", tc.lat, tc.lng)
		}
	}
}

func TestPoint_IsZero(t *testing.T) {
	var p Point
	if !p.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
}

func TestHaversineKm_SamePoint(t *testing.T) {
	p := mustPoint(t, 12.9716, 77.5946)
	if d := HaversineKm(p, p); d != 0 {
		t.Errorf("expected 0 distance to self, got %f", d)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Bengaluru to Chennai, roughly 290 km great-circle.
	blr := mustPoint(t, 12.9716, 77.5946)
	maa := mustPoint(t, 13.0827, 80.2707)

	d := HaversineKm(blr, maa)
	if math.Abs(d-290) > 10 {
		t.Errorf("expected ~290 km, got %f", d)
	}
}

func TestWithinRadius(t *testing.T) {
	center := mustPoint(t, 12.9716, 77.5946)
	near := mustPoint(t, 12.9740, 77.5990) // a few hundred meters
	far := mustPoint(t, 13.0827, 80.2707)  // another city

	if !WithinRadius(center, near, 5) {
		t.Error("expected nearby point within 5 km")
	}
	if WithinRadius(center, far, 5) {
		t.Error("expected far point outside 5 km")
	}
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	a := mustPoint(t, 0, 0)
	b := mustPoint(t, 0, 0.01)

	d := HaversineKm(a, b)
	if !WithinRadius(a, b, d) {
		t.Error("expected point at exactly the radius to match")
	}
	if WithinRadius(a, b, d-0.001) {
		t.Error("expected point just beyond the radius to miss")
	}
}
