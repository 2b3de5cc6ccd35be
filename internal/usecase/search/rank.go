package search

import (
	"sort"
	"time"
)

// candidate is the unit the ranker works on. Variants map their records
// onto candidates before ranking so the retain/order rules live in one
// place.
type candidate struct {
	id        string
	price     int64
	createdAt time.Time
	simTexts  []string // fields scored by trigram similarity
	ftTexts   []string // fields checked by full-text containment
	score     float64  // best similarity seen, set by rank
}

// rank retains candidates whose best similarity exceeds threshold or
// whose full-text fields contain the phrase, then orders survivors by
// ascending price with ascending id as the tie-break.
//
// The caller must not pass a blank phrase here; blank phrases skip
// scoring entirely and use the variant's default order.
func (s *Service) rank(cands []candidate, phrase string, threshold float64) []candidate {
	kept := make([]candidate, 0, len(cands))
	for _, c := range cands {
		best := 0.0
		for _, text := range c.simTexts {
			if sim := s.scorer.Similarity(text, phrase); sim > best {
				best = sim
			}
		}
		retained := best > threshold
		if !retained {
			for _, text := range c.ftTexts {
				if s.scorer.FullTextMatches(text, phrase) {
					retained = true
					break
				}
			}
		}
		if retained {
			c.score = best
			kept = append(kept, c)
		}
	}

	orderByPriceAsc(kept)
	return kept
}

// orderByPriceAsc sorts by ascending price, ties broken by ascending id
// for deterministic output.
func orderByPriceAsc(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].price != cands[j].price {
			return cands[i].price < cands[j].price
		}
		return cands[i].id < cands[j].id
	})
}

// orderByCreatedDesc sorts most recent first, the default listing order
// when no phrase is given.
func orderByCreatedDesc(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if !cands[i].createdAt.Equal(cands[j].createdAt) {
			return cands[i].createdAt.After(cands[j].createdAt)
		}
		return cands[i].id < cands[j].id
	})
}

// page slices the ranked set. The input is never mutated; a fresh call
// recomputes from scratch, so pagination is restartable.
func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
