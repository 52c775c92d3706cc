package coverage

import (
	"math"

	"github.com/osmanp/streampack/internal/domain/model"
)

// Cost is an amount in minor currency units (cents).
type Cost int64

// Infinite is the sentinel cost for providers with no known price. Arithmetic
// on it saturates instead of overflowing, so such a provider is never
// preferred over a priced one yet remains selectable as a sole coverer.
const Infinite Cost = math.MaxInt64

// Add returns the saturating sum of two costs.
func (c Cost) Add(other Cost) Cost {
	if c == Infinite || other == Infinite {
		return Infinite
	}
	if sum := c + other; sum >= c {
		return sum
	}
	return Infinite
}

// IsInfinite reports whether the cost is the unknown-price sentinel.
func (c Cost) IsInfinite() bool {
	return c == Infinite
}

// PerMatch returns the cost divided by the number of newly covered pairs,
// the greedy selection metric. Infinite cost maps to +Inf so comparisons
// stay well defined.
func (c Cost) PerMatch(newlyCovered int) float64 {
	if c == Infinite {
		return math.Inf(1)
	}
	return float64(c) / float64(newlyCovered)
}

// EffectiveCost is the price a combination pays for a provider: the monthly
// price when one exists, otherwise the yearly-subscription price.
type EffectiveCost struct {
	Amount Cost
	Yearly bool // true when the yearly price was used
}

// EffectiveCostOf derives the effective cost of a package. A package with
// neither price known gets the Infinite sentinel.
func EffectiveCostOf(pkg model.Package) EffectiveCost {
	if pkg.MonthlyPriceCents != 0 {
		return EffectiveCost{Amount: Cost(pkg.MonthlyPriceCents)}
	}
	if pkg.YearlyPriceCents != 0 {
		return EffectiveCost{Amount: Cost(pkg.YearlyPriceCents), Yearly: true}
	}
	return EffectiveCost{Amount: Infinite, Yearly: true}
}

// EffectiveCosts derives effective costs for a price list, keyed by package id.
func EffectiveCosts(pkgs []model.Package) map[int]EffectiveCost {
	costs := make(map[int]EffectiveCost, len(pkgs))
	for _, p := range pkgs {
		costs[p.ID] = EffectiveCostOf(p)
	}
	return costs
}
