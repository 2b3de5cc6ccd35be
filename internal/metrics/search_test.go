package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSearch_RecordsAllSeries(t *testing.T) {
	before := testutil.ToFloat64(searchesTotal.WithLabelValues(VariantGeoProducts))

	ObserveSearch(VariantGeoProducts, 15*time.Millisecond, 7)

	after := testutil.ToFloat64(searchesTotal.WithLabelValues(VariantGeoProducts))
	if after != before+1 {
		t.Errorf("expected searches_total to increment by 1, got %f -> %f", before, after)
	}

	if testutil.CollectAndCount(searchDuration) == 0 {
		t.Error("expected search_duration_seconds to have observations")
	}
	if testutil.CollectAndCount(searchResults) == 0 {
		t.Error("expected search_results to have observations")
	}
}

func TestObserveSearch_VariantsAreIndependent(t *testing.T) {
	before := testutil.ToFloat64(searchesTotal.WithLabelValues(VariantShopCombos))

	ObserveSearch(VariantBrandProducts, time.Millisecond, 0)

	after := testutil.ToFloat64(searchesTotal.WithLabelValues(VariantShopCombos))
	if after != before {
		t.Errorf("expected shop_combos counter untouched, got %f -> %f", before, after)
	}
}
