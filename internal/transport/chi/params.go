package chi

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// geoSearchParams are the query parameters of the geo search endpoints.
type geoSearchParams struct {
	Lat      float64
	Lng      float64
	RadiusKm *float64
	Phrase   *string
	ShopName *string
	Limit    *int
	Offset   *int
}

// scopedSearchParams are the query parameters of the shop- and
// brand-scoped search endpoints.
type scopedSearchParams struct {
	Phrase       *string
	Limit        *int
	Offset       *int
	ServicesOnly *bool
}

func bindGeoSearchParams(r *http.Request) (geoSearchParams, error) {
	var p geoSearchParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "lat", q, &p.Lat); err != nil {
		return p, fmt.Errorf("parameter lat: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "lng", q, &p.Lng); err != nil {
		return p, fmt.Errorf("parameter lng: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "radius_km", q, &p.RadiusKm); err != nil {
		return p, fmt.Errorf("parameter radius_km: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "phrase", q, &p.Phrase); err != nil {
		return p, fmt.Errorf("parameter phrase: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "shop_name", q, &p.ShopName); err != nil {
		return p, fmt.Errorf("parameter shop_name: %w", err)
	}
	if err := bindPageParams(q, &p.Limit, &p.Offset); err != nil {
		return p, err
	}
	return p, nil
}

func bindScopedSearchParams(r *http.Request) (scopedSearchParams, error) {
	var p scopedSearchParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "phrase", q, &p.Phrase); err != nil {
		return p, fmt.Errorf("parameter phrase: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "services_only", q, &p.ServicesOnly); err != nil {
		return p, fmt.Errorf("parameter services_only: %w", err)
	}
	if err := bindPageParams(q, &p.Limit, &p.Offset); err != nil {
		return p, err
	}
	return p, nil
}

func bindPageParams(q map[string][]string, limit, offset **int) error {
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, limit); err != nil {
		return fmt.Errorf("parameter limit: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", q, offset); err != nil {
		return fmt.Errorf("parameter offset: %w", err)
	}
	return nil
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
