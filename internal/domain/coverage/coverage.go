// Package coverage defines the cost/coverage model shared by both solvers:
// facets, (game, facet) pairs, saturating cost arithmetic, offer grouping,
// and the Combination working unit.
package coverage

import (
	"sort"
	"strconv"
	"strings"

	"github.com/osmanp/streampack/internal/domain/model"
)

// Facet is one of the two independent coverage requirements per game.
type Facet uint8

// The two facets. Every game carries one requirement per facet.
const (
	Live Facet = iota
	Highlights
)

// String returns the facet name used in logs and test output.
func (f Facet) String() string {
	if f == Live {
		return "live"
	}
	return "highlights"
}

// Pair identifies a single coverage requirement: one facet of one game.
type Pair struct {
	GameID int
	Facet  Facet
}

// RequiredPairs returns the full requirement set for games: both facets of
// every game.
func RequiredPairs(games []model.Game) map[Pair]struct{} {
	req := make(map[Pair]struct{}, len(games)*2)
	for _, g := range games {
		req[Pair{GameID: g.ID, Facet: Live}] = struct{}{}
		req[Pair{GameID: g.ID, Facet: Highlights}] = struct{}{}
	}
	return req
}

// OfferPairs returns the pairs an offer actually covers. An offer with both
// flags false covers nothing.
func OfferPairs(o model.Offer) []Pair {
	var pairs []Pair
	if o.Live {
		pairs = append(pairs, Pair{GameID: o.GameID, Facet: Live})
	}
	if o.Highlights {
		pairs = append(pairs, Pair{GameID: o.GameID, Facet: Highlights})
	}
	return pairs
}

// GroupOffersByProvider groups offers by package id, preserving first-seen
// order within each provider and dropping exact duplicates.
func GroupOffersByProvider(offers []model.Offer) map[int][]model.Offer {
	grouped := make(map[int][]model.Offer)
	seen := make(map[model.Offer]struct{}, len(offers))
	for _, o := range offers {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		grouped[o.PackageID] = append(grouped[o.PackageID], o)
	}
	return grouped
}

// ProviderIDs returns the provider ids of a grouping in ascending order.
// Both solvers use this as their stable iteration order so that tie-breaks
// never depend on map iteration.
func ProviderIDs(grouping map[int][]model.Offer) []int {
	ids := make([]int, 0, len(grouping))
	for id := range grouping {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Combination is a selected set of providers together with the offers drawn
// from them, in the order the solvers added them.
type Combination struct {
	order  []int
	offers map[int][]model.Offer
}

// NewCombination returns an empty combination.
func NewCombination() *Combination {
	return &Combination{offers: make(map[int][]model.Offer)}
}

// Add appends a provider and its selected offers. Adding a provider twice is
// a solver bug; the second call is ignored.
func (c *Combination) Add(packageID int, offers []model.Offer) {
	if _, ok := c.offers[packageID]; ok {
		return
	}
	c.order = append(c.order, packageID)
	c.offers[packageID] = offers
}

// Remove drops a provider from the combination, preserving the order of the
// remaining ones. Used by the redundancy-pruning pass.
func (c *Combination) Remove(packageID int) {
	if _, ok := c.offers[packageID]; !ok {
		return
	}
	delete(c.offers, packageID)
	for i, id := range c.order {
		if id == packageID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Providers returns package ids in the order they were added.
func (c *Combination) Providers() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// Offers returns the offers selected from one provider.
func (c *Combination) Offers(packageID int) []model.Offer {
	return c.offers[packageID]
}

// Len returns the number of providers in the combination.
func (c *Combination) Len() int {
	return len(c.order)
}

// Pairs returns the distinct (game, facet) pairs covered by any offer in the
// combination, optionally skipping one provider. Skipping supports the
// redundancy pass without copying.
func (c *Combination) Pairs(skip int) map[Pair]struct{} {
	covered := make(map[Pair]struct{})
	for id, offers := range c.offers {
		if id == skip {
			continue
		}
		for _, o := range offers {
			for _, p := range OfferPairs(o) {
				covered[p] = struct{}{}
			}
		}
	}
	return covered
}

// CoverageCount counts distinct covered pairs. A pair supplied by two
// providers counts once.
func (c *Combination) CoverageCount() int {
	return len(c.Pairs(-1))
}

// FullyCoveredGames counts games with both facets covered.
func (c *Combination) FullyCoveredGames(games []model.Game) int {
	covered := c.Pairs(-1)
	n := 0
	for _, g := range games {
		_, live := covered[Pair{GameID: g.ID, Facet: Live}]
		_, hl := covered[Pair{GameID: g.ID, Facet: Highlights}]
		if live && hl {
			n++
		}
	}
	return n
}

// TotalCost sums the providers' effective costs, saturating at Infinite.
func (c *Combination) TotalCost(costs map[int]EffectiveCost) Cost {
	total := Cost(0)
	for _, id := range c.order {
		total = total.Add(costs[id].Amount)
	}
	return total
}

// IDSum returns the sum of provider ids, the last deterministic ranking
// tie-break before discovery order.
func (c *Combination) IDSum() int {
	sum := 0
	for _, id := range c.order {
		sum += id
	}
	return sum
}

// Key returns the provider-set identity of the combination: the sorted
// package ids joined with commas. Two combinations with the same providers
// share a key regardless of selection order.
func (c *Combination) Key() string {
	ids := make([]int, len(c.order))
	copy(ids, c.order)
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
