// Package solver implements the two greedy coverage searches: weighted set
// cover for full availability and diversified max-coverage for partial
// alternatives.
//
// Both searches operate on read-only inputs and build their own working
// state, so a single Input snapshot is safe to solve from concurrently.
package solver

import (
	"github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
)

// Input bundles the request-scoped snapshot both solvers consume.
type Input struct {
	Games    []model.Game
	Grouping map[int][]model.Offer
	Costs    map[int]coverage.EffectiveCost
}

// FullCover runs a greedy weighted set cover over both facets of every game.
// It returns the selected combination after redundancy pruning, or ok=false
// when no provider set can cover everything. Infeasibility is an expected
// outcome, not an error; callers fall back to Alternatives.
func FullCover(in Input) (*coverage.Combination, bool) {
	required := coverage.RequiredPairs(in.Games)
	uncovered := make(map[coverage.Pair]struct{}, len(required))
	for p := range required {
		uncovered[p] = struct{}{}
	}

	remaining := make(map[int]struct{})
	order := coverage.ProviderIDs(in.Grouping)
	for _, id := range order {
		remaining[id] = struct{}{}
	}

	result := coverage.NewCombination()
	for len(uncovered) > 0 {
		best, bestPairs := pickCheapestPerMatch(order, remaining, in, uncovered)
		if best < 0 {
			return nil, false
		}
		// The provider joins with its full offer set; CoverageCount
		// deduplicates pairs, so overlap never inflates totals.
		result.Add(best, in.Grouping[best])
		delete(remaining, best)
		for _, p := range bestPairs {
			delete(uncovered, p)
		}
	}

	prune(result, required)
	return result, true
}

// pickCheapestPerMatch selects the remaining provider minimizing effective
// cost per newly covered pair, breaking ties by lowest package id. Returns
// -1 when no remaining provider covers anything.
func pickCheapestPerMatch(order []int, remaining map[int]struct{}, in Input, uncovered map[coverage.Pair]struct{}) (int, []coverage.Pair) {
	best := -1
	bestMetric := 0.0
	var bestPairs []coverage.Pair

	for _, id := range order {
		if _, ok := remaining[id]; !ok {
			continue
		}
		newly := newlyCovered(in.Grouping[id], uncovered)
		if len(newly) == 0 {
			continue
		}
		metric := in.Costs[id].Amount.PerMatch(len(newly))
		if best < 0 || metric < bestMetric {
			best, bestMetric, bestPairs = id, metric, newly
		}
		// Equal metric keeps the earlier (lower) id: order is ascending.
	}
	return best, bestPairs
}

// newlyCovered returns the distinct uncovered pairs a provider's offers
// would cover.
func newlyCovered(offers []model.Offer, uncovered map[coverage.Pair]struct{}) []coverage.Pair {
	var newly []coverage.Pair
	seen := make(map[coverage.Pair]struct{})
	for _, o := range offers {
		for _, p := range coverage.OfferPairs(o) {
			if _, want := uncovered[p]; !want {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			newly = append(newly, p)
		}
	}
	return newly
}

// prune removes providers whose entire contribution is supplied by the rest
// of the combination. Providers are tested in the order they were added; a
// single pass suffices because each retained provider was the cheapest
// coverer of some pair when selected.
func prune(c *coverage.Combination, required map[coverage.Pair]struct{}) {
	for _, id := range c.Providers() {
		without := c.Pairs(id)
		redundant := true
		for p := range required {
			if _, ok := without[p]; !ok {
				redundant = false
				break
			}
		}
		if redundant {
			c.Remove(id)
		}
	}
}
