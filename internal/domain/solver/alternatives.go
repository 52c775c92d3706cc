package solver

import (
	"github.com/osmanp/streampack/internal/domain/coverage"
)

// Alternatives runs diversified greedy max-coverage passes and returns the
// resulting combinations in discovery order, one per seed provider. Pass i
// seeds with the i-th provider in ascending-id order regardless of its cost,
// then continues greedily by most newly covered pairs, breaking ties by
// lowest effective cost and then lowest package id.
//
// Every provider in a recorded combination newly covered at least one
// requested pair when it was added; a pass whose seed covers nothing yields
// no combination. Deduplication and ranking are the caller's concern.
func Alternatives(in Input, opts ...Option) []*coverage.Combination {
	s := newSettings(opts...)

	order := coverage.ProviderIDs(in.Grouping)
	passes := len(order)
	if passes > s.maxPasses {
		passes = s.maxPasses
	}

	var combos []*coverage.Combination
	for i := 0; i < passes; i++ {
		c := runPass(in, order, order[i])
		if c.Len() > 0 {
			combos = append(combos, c)
		}
	}
	return combos
}

// runPass executes one greedy max-coverage pass seeded from seed. A provider
// joins the combination only if it newly covers a requested pair, so a seed
// contributing nothing ends the pass empty.
func runPass(in Input, order []int, seed int) *coverage.Combination {
	uncovered := coverage.RequiredPairs(in.Games)
	remaining := make(map[int]struct{}, len(order))
	for _, id := range order {
		remaining[id] = struct{}{}
	}

	c := coverage.NewCombination()
	take := func(id int) bool {
		newly := newlyCovered(in.Grouping[id], uncovered)
		if len(newly) == 0 {
			return false
		}
		c.Add(id, in.Grouping[id])
		delete(remaining, id)
		for _, p := range newly {
			delete(uncovered, p)
		}
		return true
	}
	if !take(seed) {
		return c
	}

	for len(uncovered) > 0 {
		best := pickMostCoverage(order, remaining, in, uncovered)
		if best < 0 {
			break
		}
		take(best)
	}
	return c
}

// pickMostCoverage selects the remaining provider covering the most uncovered
// pairs; ties go to the lowest effective cost, then the lowest package id.
// Returns -1 when no remaining provider covers anything.
func pickMostCoverage(order []int, remaining map[int]struct{}, in Input, uncovered map[coverage.Pair]struct{}) int {
	best := -1
	bestCount := 0
	bestCost := coverage.Infinite

	for _, id := range order {
		if _, ok := remaining[id]; !ok {
			continue
		}
		count := len(newlyCovered(in.Grouping[id], uncovered))
		if count == 0 {
			continue
		}
		cost := in.Costs[id].Amount
		switch {
		case count > bestCount:
		case count == bestCount && cost < bestCost:
		default:
			continue
		}
		best, bestCount, bestCost = id, count, cost
	}
	return best
}
