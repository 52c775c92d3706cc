package rank_test

import (
	"testing"

	coverage "github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
	rank "github.com/osmanp/streampack/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func combo(ids ...int) *coverage.Combination {
	c := coverage.NewCombination()
	for _, id := range ids {
		c.Add(id, nil)
	}
	return c
}

func comboWith(id int, offers ...model.Offer) *coverage.Combination {
	c := coverage.NewCombination()
	c.Add(id, offers)
	return c
}

func TestBuild(t *testing.T) {
	Convey("Given combinations over a two-game request", t, func() {
		games := []model.Game{{ID: 10}, {ID: 11}}
		costs := map[int]coverage.EffectiveCost{
			1: {Amount: 500},
			2: {Amount: 300},
		}
		full := coverage.NewCombination()
		full.Add(1, []model.Offer{
			{GameID: 10, PackageID: 1, Live: true, Highlights: true},
			{GameID: 11, PackageID: 1, Live: true},
		})
		full.Add(2, []model.Offer{{GameID: 11, PackageID: 2, Highlights: true}})
		partial := comboWith(2, model.Offer{GameID: 11, PackageID: 2, Highlights: true})

		Convey("When annotating them", func() {
			cands := rank.Build(games, []*coverage.Combination{full, partial}, costs)

			Convey("Then each candidate carries its three measures", func() {
				So(cands, ShouldHaveLength, 2)
				So(cands[0].Covered, ShouldEqual, 4)
				So(cands[0].FullGames, ShouldEqual, 2)
				So(cands[0].Cost, ShouldEqual, coverage.Cost(800))
				So(cands[1].Covered, ShouldEqual, 1)
				So(cands[1].FullGames, ShouldEqual, 0)
				So(cands[1].Cost, ShouldEqual, coverage.Cost(300))
			})
		})
	})
}

func TestOrder(t *testing.T) {
	Convey("Given candidates differing on each ranking measure", t, func() {
		cands := []rank.Candidate{
			{Combination: combo(4), Covered: 2, FullGames: 1, Cost: 100},
			{Combination: combo(1), Covered: 4, FullGames: 2, Cost: 900},
			{Combination: combo(3), Covered: 4, FullGames: 1, Cost: 100},
			{Combination: combo(2), Covered: 4, FullGames: 2, Cost: 200},
		}

		Convey("When ordering", func() {
			rank.Order(cands)

			Convey("Then coverage dominates, then full games, then cost", func() {
				So(cands[0].Combination.Key(), ShouldEqual, "2")
				So(cands[1].Combination.Key(), ShouldEqual, "1")
				So(cands[2].Combination.Key(), ShouldEqual, "3")
				So(cands[3].Combination.Key(), ShouldEqual, "4")
			})

			Convey("Then covered counts never increase down the list", func() {
				for i := 1; i < len(cands); i++ {
					So(cands[i].Covered, ShouldBeLessThanOrEqualTo, cands[i-1].Covered)
				}
			})
		})
	})

	Convey("Given candidates tied on every measure but the id sum", t, func() {
		cands := []rank.Candidate{
			{Combination: combo(7, 2), Covered: 3, FullGames: 1, Cost: 400},
			{Combination: combo(1, 3), Covered: 3, FullGames: 1, Cost: 400},
		}

		Convey("When ordering", func() {
			rank.Order(cands)

			Convey("Then the lower id sum comes first", func() {
				So(cands[0].Combination.IDSum(), ShouldEqual, 4)
				So(cands[1].Combination.IDSum(), ShouldEqual, 9)
			})
		})
	})

	Convey("Given candidates tied on everything", t, func() {
		first := combo(1, 5)
		second := combo(2, 4)
		cands := []rank.Candidate{
			{Combination: first, Covered: 2, FullGames: 1, Cost: 300},
			{Combination: second, Covered: 2, FullGames: 1, Cost: 300},
		}

		Convey("When ordering", func() {
			rank.Order(cands)

			Convey("Then discovery order survives the stable sort", func() {
				So(cands[0].Combination, ShouldEqual, first)
				So(cands[1].Combination, ShouldEqual, second)
			})
		})
	})
}

func TestDedupe(t *testing.T) {
	Convey("Given candidates sharing a provider set in different orders", t, func() {
		cands := []rank.Candidate{
			{Combination: combo(1, 2), Covered: 4, Cost: 800},
			{Combination: combo(2, 1), Covered: 4, Cost: 800},
			{Combination: combo(2), Covered: 1, Cost: 300},
		}

		Convey("When deduplicating", func() {
			out := rank.Dedupe(cands)

			Convey("Then the first occurrence of each set survives", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].Combination.Providers(), ShouldResemble, []int{1, 2})
				So(out[1].Combination.Key(), ShouldEqual, "2")
			})
		})
	})

	Convey("Given an empty candidate list", t, func() {
		So(rank.Dedupe(nil), ShouldBeEmpty)
	})
}

func TestFilterByCeiling(t *testing.T) {
	Convey("Given candidates at five and three whole units", t, func() {
		cands := []rank.Candidate{
			{Combination: combo(1), Covered: 3, Cost: 500},
			{Combination: combo(2), Covered: 1, Cost: 300},
		}

		Convey("When filtering with a ceiling of four units", func() {
			out, err := rank.FilterByCeiling(cands, 4)

			Convey("Then only the cheaper candidate remains", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 1)
				So(out[0].Combination.Key(), ShouldEqual, "2")
			})
		})

		Convey("When the ceiling exactly matches a candidate", func() {
			out, err := rank.FilterByCeiling(cands, 5)

			Convey("Then the boundary candidate is kept", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 2)
			})
		})

		Convey("When the ceiling is zero or negative", func() {
			_, err := rank.FilterByCeiling(cands, 0)
			So(err, ShouldEqual, rank.ErrInvalidPriceCeiling)

			_, err = rank.FilterByCeiling(cands, -3)
			So(err, ShouldEqual, rank.ErrInvalidPriceCeiling)
		})

		Convey("When a candidate has no known price", func() {
			cands = append(cands, rank.Candidate{Combination: combo(9), Covered: 5, Cost: coverage.Infinite})
			out, err := rank.FilterByCeiling(cands, 1000)

			Convey("Then the unpriced candidate never passes a ceiling", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 2)
			})
		})
	})
}
