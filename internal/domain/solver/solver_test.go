package solver_test

import (
	"testing"

	coverage "github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
	solver "github.com/osmanp/streampack/internal/domain/solver"
	. "github.com/smartystreets/goconvey/convey"
)

// twoProviderInput is the smallest feasible catalog: provider 1 covers both
// facets of game 10 and the live facet of game 11, provider 2 covers the
// highlights facet of game 11.
func twoProviderInput() solver.Input {
	offers := []model.Offer{
		{GameID: 10, PackageID: 1, Live: true, Highlights: true},
		{GameID: 11, PackageID: 1, Live: true},
		{GameID: 11, PackageID: 2, Highlights: true},
	}
	return solver.Input{
		Games:    []model.Game{{ID: 10}, {ID: 11}},
		Grouping: coverage.GroupOffersByProvider(offers),
		Costs: map[int]coverage.EffectiveCost{
			1: {Amount: 500},
			2: {Amount: 300},
		},
	}
}

func TestFullCover(t *testing.T) {
	Convey("Given two providers that jointly cover everything", t, func() {
		in := twoProviderInput()

		Convey("When running the full-cover search", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then it finds a feasible combination", func() {
				So(ok, ShouldBeTrue)
				So(combo, ShouldNotBeNil)
			})

			Convey("Then both providers are needed", func() {
				So(combo.Key(), ShouldEqual, "1,2")
			})

			Convey("Then every facet of every game is covered", func() {
				So(combo.CoverageCount(), ShouldEqual, 4)
				So(combo.FullyCoveredGames(in.Games), ShouldEqual, 2)
			})

			Convey("Then the total cost is the sum of both", func() {
				So(combo.TotalCost(in.Costs), ShouldEqual, coverage.Cost(800))
			})
		})

		Convey("When an uncoverable game joins the request", func() {
			in.Games = append(in.Games, model.Game{ID: 12})
			combo, ok := solver.FullCover(in)

			Convey("Then the search reports infeasibility, not an error", func() {
				So(ok, ShouldBeFalse)
				So(combo, ShouldBeNil)
			})
		})
	})

	Convey("Given a single provider covering everything", t, func() {
		offers := []model.Offer{
			{GameID: 10, PackageID: 3, Live: true, Highlights: true},
		}
		in := solver.Input{
			Games:    []model.Game{{ID: 10}},
			Grouping: coverage.GroupOffersByProvider(offers),
			Costs:    map[int]coverage.EffectiveCost{3: {Amount: 100}},
		}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the combination holds just that provider", func() {
				So(ok, ShouldBeTrue)
				So(combo.Providers(), ShouldResemble, []int{3})
			})
		})
	})

	Convey("Given no games at all", t, func() {
		in := solver.Input{Grouping: map[int][]model.Offer{}, Costs: map[int]coverage.EffectiveCost{}}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the empty combination is trivially feasible", func() {
				So(ok, ShouldBeTrue)
				So(combo.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestFullCoverSelection(t *testing.T) {
	Convey("Given providers with different cost-per-match ratios", t, func() {
		// Provider 1 covers all four pairs for 1000; provider 2 covers two
		// pairs for 600. Provider 1's ratio (250) beats provider 2's (300).
		offers := []model.Offer{
			{GameID: 10, PackageID: 1, Live: true, Highlights: true},
			{GameID: 11, PackageID: 1, Live: true, Highlights: true},
			{GameID: 10, PackageID: 2, Live: true, Highlights: true},
		}
		in := solver.Input{
			Games:    []model.Game{{ID: 10}, {ID: 11}},
			Grouping: coverage.GroupOffersByProvider(offers),
			Costs: map[int]coverage.EffectiveCost{
				1: {Amount: 1000},
				2: {Amount: 600},
			},
		}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the better ratio wins outright", func() {
				So(ok, ShouldBeTrue)
				So(combo.Providers(), ShouldResemble, []int{1})
			})
		})
	})

	Convey("Given two providers with an identical metric", t, func() {
		offers := []model.Offer{
			{GameID: 10, PackageID: 5, Live: true, Highlights: true},
			{GameID: 10, PackageID: 8, Live: true, Highlights: true},
		}
		in := solver.Input{
			Games:    []model.Game{{ID: 10}},
			Grouping: coverage.GroupOffersByProvider(offers),
			Costs: map[int]coverage.EffectiveCost{
				5: {Amount: 400},
				8: {Amount: 400},
			},
		}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the lower package id breaks the tie", func() {
				So(ok, ShouldBeTrue)
				So(combo.Providers(), ShouldResemble, []int{5})
			})
		})
	})

	Convey("Given an unpriced provider as the only coverer of one pair", t, func() {
		offers := []model.Offer{
			{GameID: 10, PackageID: 1, Live: true, Highlights: true},
			{GameID: 11, PackageID: 9, Live: true, Highlights: true},
		}
		in := solver.Input{
			Games:    []model.Game{{ID: 10}, {ID: 11}},
			Grouping: coverage.GroupOffersByProvider(offers),
			Costs: map[int]coverage.EffectiveCost{
				1: {Amount: 300},
				9: {Amount: coverage.Infinite, Yearly: true},
			},
		}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the unpriced provider is still selectable", func() {
				So(ok, ShouldBeTrue)
				So(combo.Key(), ShouldEqual, "1,9")
			})

			Convey("And the total saturates at the sentinel", func() {
				So(combo.TotalCost(in.Costs).IsInfinite(), ShouldBeTrue)
			})
		})
	})
}

func TestFullCoverPruning(t *testing.T) {
	Convey("Given a greedy pick made redundant by later selections", t, func() {
		// Provider 1 grabs both live facets first on the best ratio, then
		// providers 2 and 3 cover everything between them, leaving provider 1
		// contributing nothing unique.
		offers := []model.Offer{
			{GameID: 10, PackageID: 1, Live: true},
			{GameID: 11, PackageID: 1, Live: true},
			{GameID: 10, PackageID: 2, Live: true, Highlights: true},
			{GameID: 11, PackageID: 3, Live: true, Highlights: true},
		}
		in := solver.Input{
			Games:    []model.Game{{ID: 10}, {ID: 11}},
			Grouping: coverage.GroupOffersByProvider(offers),
			Costs: map[int]coverage.EffectiveCost{
				1: {Amount: 100},
				2: {Amount: 150},
				3: {Amount: 150},
			},
		}

		Convey("When solving", func() {
			combo, ok := solver.FullCover(in)

			Convey("Then the result still covers everything", func() {
				So(ok, ShouldBeTrue)
				So(combo.CoverageCount(), ShouldEqual, 4)
			})

			Convey("Then the redundant provider is pruned", func() {
				So(combo.Key(), ShouldEqual, "2,3")
			})
		})
	})
}

func TestFullCoverDeterminism(t *testing.T) {
	Convey("Given the same input solved repeatedly", t, func() {
		in := twoProviderInput()

		Convey("When solving five times", func() {
			first, ok := solver.FullCover(in)
			So(ok, ShouldBeTrue)

			Convey("Then every run selects the same providers in the same order", func() {
				for i := 0; i < 4; i++ {
					again, ok := solver.FullCover(in)
					So(ok, ShouldBeTrue)
					So(again.Providers(), ShouldResemble, first.Providers())
				}
			})
		})
	})
}
