package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search variant labels. One label per public search operation keeps
// cardinality fixed.
const (
	VariantGeoProducts   = "geo_products"
	VariantGeoCombos     = "geo_combos"
	VariantShopProducts  = "shop_products"
	VariantShopCombos    = "shop_combos"
	VariantBrandProducts = "brand_products"
)

var (
	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketsearch",
			Name:      "search_duration_seconds",
			Help:      "Search execution duration in seconds by variant",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"variant"},
	)

	searchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketsearch",
			Name:      "search_results",
			Help:      "Number of retained results per search by variant",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"variant"},
	)

	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketsearch",
			Name:      "searches_total",
			Help:      "Total number of searches by variant",
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(searchResults)
	prometheus.MustRegister(searchesTotal)
}

// ObserveSearch records one search execution. The count is the retained
// result total before pagination.
func ObserveSearch(variant string, duration time.Duration, resultCount int) {
	searchDuration.WithLabelValues(variant).Observe(duration.Seconds())
	searchResults.WithLabelValues(variant).Observe(float64(resultCount))
	searchesTotal.WithLabelValues(variant).Inc()
}
