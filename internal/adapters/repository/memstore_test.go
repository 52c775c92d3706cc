package repository_test

import (
	"context"
	"testing"
	"time"

	repository "github.com/osmanp/streampack/internal/adapters/repository"
	"github.com/osmanp/streampack/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func kickoff(day int) time.Time {
	return time.Date(2024, 6, day, 18, 0, 0, 0, time.UTC)
}

func testStore() *repository.MemoryStore {
	games := []model.Game{
		{ID: 11, TeamHome: "FC Bayern München", TeamAway: "Borussia Dortmund", StartsAt: kickoff(2), Tournament: "Bundesliga"},
		{ID: 10, TeamHome: "Borussia Dortmund", TeamAway: "VfB Stuttgart", StartsAt: kickoff(1), Tournament: "Bundesliga"},
		{ID: 12, TeamHome: "Hamburger SV", TeamAway: "FC St. Pauli", StartsAt: kickoff(3), Tournament: "2. Bundesliga"},
	}
	offers := []model.Offer{
		{GameID: 10, PackageID: 1, Live: true, Highlights: true},
		{GameID: 11, PackageID: 1, Live: true},
		{GameID: 11, PackageID: 2, Highlights: true},
	}
	packages := []model.Package{
		{ID: 2, Name: "Momentum Pass", MonthlyPriceCents: 300},
		{ID: 1, Name: "Arena Total", MonthlyPriceCents: 500},
	}
	return repository.NewMemoryStore(games, offers, packages)
}

func TestMemoryStoreGamesForTeams(t *testing.T) {
	Convey("Given a populated catalog", t, func() {
		store := testStore()
		ctx := context.Background()

		Convey("When querying one team", func() {
			games, err := store.GamesForTeams(ctx, []string{"Borussia Dortmund"})

			Convey("Then home and away games come back ordered by id", func() {
				So(err, ShouldBeNil)
				So(games, ShouldHaveLength, 2)
				So(games[0].ID, ShouldEqual, 10)
				So(games[1].ID, ShouldEqual, 11)
			})
		})

		Convey("When two teams share a game", func() {
			games, err := store.GamesForTeams(ctx, []string{"Borussia Dortmund", "FC Bayern München"})

			Convey("Then the shared game appears once", func() {
				So(err, ShouldBeNil)
				So(games, ShouldHaveLength, 2)
			})
		})

		Convey("When a team is unknown", func() {
			games, err := store.GamesForTeams(ctx, []string{"FC Nirgendwo"})

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(games, ShouldBeEmpty)
			})
		})
	})
}

func TestMemoryStoreGamesByID(t *testing.T) {
	Convey("Given a populated catalog", t, func() {
		store := testStore()
		ctx := context.Background()

		Convey("When resolving known ids", func() {
			games, err := store.GamesByID(ctx, []int{12, 10})

			Convey("Then games come back in request order", func() {
				So(err, ShouldBeNil)
				So(games, ShouldHaveLength, 2)
				So(games[0].ID, ShouldEqual, 12)
				So(games[1].ID, ShouldEqual, 10)
			})
		})

		Convey("When one id is unknown", func() {
			_, err := store.GamesByID(ctx, []int{10, 999})

			Convey("Then the lookup fails with ErrNotFound", func() {
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})
	})
}

func TestMemoryStoreOffersAndPackages(t *testing.T) {
	Convey("Given a populated catalog", t, func() {
		store := testStore()
		ctx := context.Background()

		Convey("When fetching offers for games", func() {
			offers, err := store.OffersForGames(ctx, []int{11})

			Convey("Then only offers of those games return", func() {
				So(err, ShouldBeNil)
				So(offers, ShouldHaveLength, 2)
				for _, o := range offers {
					So(o.GameID, ShouldEqual, 11)
				}
			})
		})

		Convey("When fetching offers for a game without any", func() {
			offers, err := store.OffersForGames(ctx, []int{12})
			So(err, ShouldBeNil)
			So(offers, ShouldBeEmpty)
		})

		Convey("When fetching the price list", func() {
			pkgs, err := store.Packages(ctx)

			Convey("Then packages come back ordered by id", func() {
				So(err, ShouldBeNil)
				So(pkgs, ShouldHaveLength, 2)
				So(pkgs[0].ID, ShouldEqual, 1)
				So(pkgs[1].ID, ShouldEqual, 2)
			})
		})

		Convey("When listing teams", func() {
			teams, err := store.AllTeams(ctx)

			Convey("Then the list is sorted and deduplicated", func() {
				So(err, ShouldBeNil)
				So(teams, ShouldResemble, []string{
					"Borussia Dortmund",
					"FC Bayern München",
					"FC St. Pauli",
					"Hamburger SV",
					"VfB Stuttgart",
				})
			})
		})

		Convey("When asking for counts", func() {
			counts := store.Count(ctx)
			So(counts.Games, ShouldEqual, 3)
			So(counts.Offers, ShouldEqual, 3)
			So(counts.Packages, ShouldEqual, 2)
			So(counts.Teams, ShouldEqual, 5)
		})
	})
}
