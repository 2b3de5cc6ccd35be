package search

import (
	"time"

	"github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/search/result"
)

// comboCandidates maps combos onto the ranker's candidate shape:
// name scored by similarity, description checked by full text.
func comboCandidates(combos []catalog.Combo) []candidate {
	cands := make([]candidate, 0, len(combos))
	for _, c := range combos {
		cands = append(cands, candidate{
			id:        c.ID(),
			price:     c.OfferedPrice(),
			createdAt: c.CreatedAt(),
			simTexts:  []string{c.Name()},
			ftTexts:   []string{c.Description()},
		})
	}
	return cands
}

// productCandidates maps brand catalog products onto candidates. Brand
// search has no full-text fallback; only the title is scored.
func productCandidates(products []catalog.Product) []candidate {
	cands := make([]candidate, 0, len(products))
	for _, p := range products {
		cands = append(cands, candidate{
			id:       p.ID(),
			price:    p.MRP(),
			simTexts: []string{p.Title()},
		})
	}
	return cands
}

// listingHits hydrates ranked listing candidates back into hits.
func listingHits(
	cands []candidate, listings []catalog.ShopProduct, products map[string]catalog.Product,
) []result.Hit {
	byID := make(map[string]catalog.ShopProduct, len(listings))
	for _, sp := range listings {
		byID[sp.ID()] = sp
	}

	hits := make([]result.Hit, 0, len(cands))
	for _, c := range cands {
		sp, ok := byID[c.id]
		if !ok {
			continue
		}
		title := ""
		if p, ok := products[sp.ProductID()]; ok {
			title = p.Title()
		}
		hits = append(hits, result.New(
			sp.ID(), result.KindShopProduct, sp.ShopID(), sp.ProductID(),
			title, sp.OfferedPrice(), c.score, sp.CreatedAt(),
		))
	}
	return hits
}

// comboHits hydrates ranked combo candidates back into hits.
func comboHits(cands []candidate, combos []catalog.Combo) []result.Hit {
	byID := make(map[string]catalog.Combo, len(combos))
	for _, c := range combos {
		byID[c.ID()] = c
	}

	hits := make([]result.Hit, 0, len(cands))
	for _, c := range cands {
		combo, ok := byID[c.id]
		if !ok {
			continue
		}
		hits = append(hits, result.New(
			combo.ID(), result.KindCombo, combo.ShopID(), "",
			combo.Name(), combo.OfferedPrice(), c.score, combo.CreatedAt(),
		))
	}
	return hits
}

// productHits hydrates ranked brand products back into hits.
func productHits(cands []candidate, products []catalog.Product) []result.Hit {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	hits := make([]result.Hit, 0, len(cands))
	for _, c := range cands {
		p, ok := byID[c.id]
		if !ok {
			continue
		}
		hits = append(hits, result.New(
			p.ID(), result.KindProduct, "", p.ID(),
			p.Title(), p.MRP(), c.score, time.Time{},
		))
	}
	return hits
}
