package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/osmanp/streampack/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	packagesCSV = `id,name,monthly_price_cents,monthly_price_yearly_subscription_in_cents
1,Arena Total,500,450
2,Momentum Pass,,300
3,Kurve Plus,,
`
	gamesCSV = `id,team_home,team_away,starts_at,tournament_name
10,Borussia Dortmund,VfB Stuttgart,2024-06-01 18:00:00,Bundesliga
11,FC Bayern München,Borussia Dortmund,2024-06-02T20:30:00Z,Bundesliga
`
	offersCSV = `game_id,streaming_package_id,live,highlights
10,1,1,1
11,1,true,false
11,2,0,1
`
)

func writeCatalog(t *testing.T, packages, games, offers string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"bc_streaming_package.csv": packages,
		"bc_game.csv":              games,
		"bc_streaming_offer.csv":   offers,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoader(t *testing.T) {
	Convey("Given a directory with all three catalog files", t, func() {
		dir := writeCatalog(t, packagesCSV, gamesCSV, offersCSV)
		ctx := context.Background()

		Convey("When loading", func() {
			store, err := repository.NewLoader(dir).Load(ctx)

			Convey("Then the store holds every record", func() {
				So(err, ShouldBeNil)
				counts := store.Count(ctx)
				So(counts.Games, ShouldEqual, 2)
				So(counts.Offers, ShouldEqual, 3)
				So(counts.Packages, ShouldEqual, 3)
			})

			Convey("Then empty price fields become zero", func() {
				So(err, ShouldBeNil)
				pkgs, perr := store.Packages(ctx)
				So(perr, ShouldBeNil)
				So(pkgs[1].MonthlyPriceCents, ShouldEqual, 0)
				So(pkgs[1].YearlyPriceCents, ShouldEqual, 300)
				So(pkgs[2].MonthlyPriceCents, ShouldEqual, 0)
				So(pkgs[2].YearlyPriceCents, ShouldEqual, 0)
			})

			Convey("Then both timestamp layouts parse", func() {
				So(err, ShouldBeNil)
				games, gerr := store.GamesByID(ctx, []int{10, 11})
				So(gerr, ShouldBeNil)
				So(games[0].StartsAt.Hour(), ShouldEqual, 18)
				So(games[1].StartsAt.Minute(), ShouldEqual, 30)
			})

			Convey("Then numeric and textual booleans both parse", func() {
				So(err, ShouldBeNil)
				offers, oerr := store.OffersForGames(ctx, []int{11})
				So(oerr, ShouldBeNil)
				So(offers[0].Live, ShouldBeTrue)
				So(offers[0].Highlights, ShouldBeFalse)
				So(offers[1].Live, ShouldBeFalse)
				So(offers[1].Highlights, ShouldBeTrue)
			})
		})
	})

	Convey("Given a catalog with a missing file", t, func() {
		dir := t.TempDir()

		Convey("When loading", func() {
			_, err := repository.NewLoader(dir).Load(context.Background())

			Convey("Then the open failure surfaces", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a packages file without the id column", t, func() {
		dir := writeCatalog(t, "name,monthly_price_cents\nArena Total,500\n", gamesCSV, offersCSV)

		Convey("When loading", func() {
			_, err := repository.NewLoader(dir).Load(context.Background())

			Convey("Then the error marks a bad catalog", func() {
				So(err, ShouldWrap, repository.ErrBadCatalog)
			})
		})
	})

	Convey("Given a games file with a broken timestamp", t, func() {
		broken := `id,team_home,team_away,starts_at,tournament_name
10,A,B,yesterday,Bundesliga
`
		dir := writeCatalog(t, packagesCSV, broken, offersCSV)

		Convey("When loading", func() {
			_, err := repository.NewLoader(dir).Load(context.Background())

			Convey("Then the error names the record and wraps ErrBadCatalog", func() {
				So(err, ShouldWrap, repository.ErrBadCatalog)
				So(err.Error(), ShouldContainSubstring, "record 2")
			})
		})
	})

	Convey("Given an offers file with a non-integer id", t, func() {
		broken := `game_id,streaming_package_id,live,highlights
ten,1,1,0
`
		dir := writeCatalog(t, packagesCSV, gamesCSV, broken)

		Convey("When loading", func() {
			_, err := repository.NewLoader(dir).Load(context.Background())
			So(err, ShouldWrap, repository.ErrBadCatalog)
		})
	})

	Convey("Given custom file names", t, func() {
		dir := t.TempDir()
		for name, body := range map[string]string{
			"pkg.csv":   packagesCSV,
			"game.csv":  gamesCSV,
			"offer.csv": offersCSV,
		} {
			So(os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600), ShouldBeNil)
		}

		Convey("When loading with the file-name options", func() {
			store, err := repository.NewLoader(dir,
				repository.WithPackagesFile("pkg.csv"),
				repository.WithGamesFile("game.csv"),
				repository.WithOffersFile("offer.csv"),
			).Load(context.Background())

			Convey("Then the catalog loads from the custom names", func() {
				So(err, ShouldBeNil)
				So(store.Count(context.Background()).Games, ShouldEqual, 2)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		dir := writeCatalog(t, packagesCSV, gamesCSV, offersCSV)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When loading", func() {
			_, err := repository.NewLoader(dir).Load(ctx)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}
