// Package rank orders candidate combinations, removes duplicates by
// provider-set identity, and applies the caller's price ceiling.
package rank

import (
	"sort"

	"github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
)

// CentsPerUnit converts a caller-supplied price ceiling (whole currency
// units) to the cents used throughout the cost model.
const CentsPerUnit = 100

// Candidate is a combination annotated with the three ranking measures.
type Candidate struct {
	Combination *coverage.Combination
	Covered     int           // distinct (game, facet) pairs covered
	FullGames   int           // games covered on both facets
	Cost        coverage.Cost // total effective cost, cents
}

// Build annotates combinations with their ranking measures against the
// request's game list and price map.
func Build(games []model.Game, combos []*coverage.Combination, costs map[int]coverage.EffectiveCost) []Candidate {
	cands := make([]Candidate, 0, len(combos))
	for _, c := range combos {
		cands = append(cands, Candidate{
			Combination: c,
			Covered:     c.CoverageCount(),
			FullGames:   c.FullyCoveredGames(games),
			Cost:        c.TotalCost(costs),
		})
	}
	return cands
}

// Order sorts candidates in place: pairs covered descending, fully covered
// games descending, total cost ascending, provider-id sum ascending. The
// stable sort preserves discovery order as the final tie-break.
func Order(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Covered != b.Covered {
			return a.Covered > b.Covered
		}
		if a.FullGames != b.FullGames {
			return a.FullGames > b.FullGames
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.Combination.IDSum() < b.Combination.IDSum()
	})
}

// Dedupe drops candidates whose provider set was already seen, keeping the
// first occurrence. Selection order within a combination does not matter.
func Dedupe(cands []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(cands))
	out := cands[:0]
	for _, c := range cands {
		key := c.Combination.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// FilterByCeiling keeps candidates whose total cost is at most ceiling whole
// currency units. A non-positive ceiling is a caller input error.
func FilterByCeiling(cands []Candidate, ceiling int) ([]Candidate, error) {
	if ceiling <= 0 {
		return nil, ErrInvalidPriceCeiling
	}
	limit := coverage.Cost(ceiling) * CentsPerUnit
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if !c.Cost.IsInfinite() && c.Cost <= limit {
			out = append(out, c)
		}
	}
	return out, nil
}
