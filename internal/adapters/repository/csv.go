package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/osmanp/streampack/internal/domain/model"
)

// Default catalog file names, matching the upstream data drop.
const (
	defaultPackagesFile = "bc_streaming_package.csv"
	defaultGamesFile    = "bc_game.csv"
	defaultOffersFile   = "bc_streaming_offer.csv"
)

// Timestamp layouts accepted for the games file, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Loader ingests the three catalog CSV files from a directory.
type Loader struct {
	dir          string
	packagesFile string
	gamesFile    string
	offersFile   string
}

// NewLoader creates a Loader for the given directory with configuration
// options.
func NewLoader(dir string, opts ...LoaderOption) *Loader {
	l := &Loader{
		dir:          dir,
		packagesFile: defaultPackagesFile,
		gamesFile:    defaultGamesFile,
		offersFile:   defaultOffersFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses all three files and builds a MemoryStore.
func (l *Loader) Load(ctx context.Context) (*MemoryStore, error) {
	packages, err := loadFile(ctx, filepath.Join(l.dir, l.packagesFile), parsePackage)
	if err != nil {
		return nil, err
	}
	games, err := loadFile(ctx, filepath.Join(l.dir, l.gamesFile), parseGame)
	if err != nil {
		return nil, err
	}
	offers, err := loadFile(ctx, filepath.Join(l.dir, l.offersFile), parseOffer)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(games, offers, packages), nil
}

// row gives parsers named access to one CSV record.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(col string) (string, error) {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.fields) {
		return "", fmt.Errorf("missing column %q: %w", col, ErrBadCatalog)
	}
	return strings.TrimSpace(r.fields[idx]), nil
}

func (r row) getInt(col string) (int, error) {
	raw, err := r.get(col)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not an integer: %w", col, raw, ErrBadCatalog)
	}
	return n, nil
}

func (r row) getBool(col string) (bool, error) {
	raw, err := r.get(col)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("column %q: %q is not a boolean: %w", col, raw, ErrBadCatalog)
	}
	return b, nil
}

func (r row) getTime(col string) (time.Time, error) {
	raw, err := r.get(col)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeLayouts {
		if ts, perr := time.Parse(layout, raw); perr == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %q: %q is not a timestamp: %w", col, raw, ErrBadCatalog)
}

// loadFile streams one CSV file through parse, annotating failures with the
// file name and record number.
func loadFile[T any](ctx context.Context, path string, parse func(row) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", filepath.Base(path), err)
	}
	header := make(map[string]int, len(head))
	for i, col := range head {
		header[strings.TrimSpace(col)] = i
	}

	var out []T
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", filepath.Base(path), line, err)
		}
		v, err := parse(row{header: header, fields: fields})
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", filepath.Base(path), line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parsePackage(r row) (model.Package, error) {
	id, err := r.getInt("id")
	if err != nil {
		return model.Package{}, err
	}
	name, err := r.get("name")
	if err != nil {
		return model.Package{}, err
	}
	monthly, err := r.getInt("monthly_price_cents")
	if err != nil {
		return model.Package{}, err
	}
	yearly, err := r.getInt("monthly_price_yearly_subscription_in_cents")
	if err != nil {
		return model.Package{}, err
	}
	return model.Package{ID: id, Name: name, MonthlyPriceCents: monthly, YearlyPriceCents: yearly}, nil
}

func parseGame(r row) (model.Game, error) {
	id, err := r.getInt("id")
	if err != nil {
		return model.Game{}, err
	}
	home, err := r.get("team_home")
	if err != nil {
		return model.Game{}, err
	}
	away, err := r.get("team_away")
	if err != nil {
		return model.Game{}, err
	}
	startsAt, err := r.getTime("starts_at")
	if err != nil {
		return model.Game{}, err
	}
	tournament, err := r.get("tournament_name")
	if err != nil {
		return model.Game{}, err
	}
	return model.Game{ID: id, TeamHome: home, TeamAway: away, StartsAt: startsAt, Tournament: tournament}, nil
}

func parseOffer(r row) (model.Offer, error) {
	gameID, err := r.getInt("game_id")
	if err != nil {
		return model.Offer{}, err
	}
	packageID, err := r.getInt("streaming_package_id")
	if err != nil {
		return model.Offer{}, err
	}
	live, err := r.getBool("live")
	if err != nil {
		return model.Offer{}, err
	}
	highlights, err := r.getBool("highlights")
	if err != nil {
		return model.Offer{}, err
	}
	return model.Offer{GameID: gameID, PackageID: packageID, Live: live, Highlights: highlights}, nil
}
