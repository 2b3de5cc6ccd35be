// Package search implements the proximity-and-relevance search core:
// geo filtering first, then text filtering, then price-ordered ranking.
// Every call recomputes from the current catalog snapshot; the service
// holds no state between calls.
package search

import "github.com/raspaai/marketsearch/internal/similarity"

// Service composes geo lookup, candidate filtering and ranking per
// search variant.
type Service struct {
	shops    ShopDirectory
	brands   BrandReader
	products ProductReader
	listings ListingReader
	scorer   Scorer
}

// New creates a search service with the trigram scorer.
func New(shops ShopDirectory, brands BrandReader, products ProductReader, listings ListingReader) *Service {
	return &Service{
		shops:    shops,
		brands:   brands,
		products: products,
		listings: listings,
		scorer:   trigramScorer{},
	}
}

// WithScorer replaces the text match implementation.
func (s *Service) WithScorer(sc Scorer) *Service {
	s.scorer = sc
	return s
}

// trigramScorer adapts the similarity package to the Scorer contract.
type trigramScorer struct{}

func (trigramScorer) Similarity(text, phrase string) float64 {
	return similarity.Similarity(text, phrase)
}

func (trigramScorer) FullTextMatches(text, phrase string) bool {
	return similarity.FullTextMatches(text, phrase)
}
