package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/osmanp/streampack/internal/domain/model"
)

// MemoryStore is an immutable in-memory catalog. It is built once at startup
// (normally from CSV files, see Loader) and is safe for concurrent reads
// without locking because nothing mutates it afterwards.
type MemoryStore struct {
	games        []model.Game // ordered by id
	packages     []model.Package
	gamesByID    map[int]model.Game
	gamesByTeam  map[string][]int // team name -> game ids, ascending
	offersByGame map[int][]model.Offer
	teams        []string // sorted
	offerCount   int
}

// NewMemoryStore builds a catalog from already-parsed records.
func NewMemoryStore(games []model.Game, offers []model.Offer, packages []model.Package) *MemoryStore {
	s := &MemoryStore{
		games:        append([]model.Game(nil), games...),
		packages:     append([]model.Package(nil), packages...),
		gamesByID:    make(map[int]model.Game, len(games)),
		gamesByTeam:  make(map[string][]int),
		offersByGame: make(map[int][]model.Offer),
		offerCount:   len(offers),
	}

	sort.Slice(s.games, func(i, j int) bool { return s.games[i].ID < s.games[j].ID })
	sort.Slice(s.packages, func(i, j int) bool { return s.packages[i].ID < s.packages[j].ID })

	for _, g := range s.games {
		s.gamesByID[g.ID] = g
		s.gamesByTeam[g.TeamHome] = append(s.gamesByTeam[g.TeamHome], g.ID)
		s.gamesByTeam[g.TeamAway] = append(s.gamesByTeam[g.TeamAway], g.ID)
	}
	for _, o := range offers {
		s.offersByGame[o.GameID] = append(s.offersByGame[o.GameID], o)
	}

	s.teams = make([]string, 0, len(s.gamesByTeam))
	for team := range s.gamesByTeam {
		s.teams = append(s.teams, team)
	}
	sort.Strings(s.teams)

	return s
}

// GamesForTeams returns the games of the given teams, deduplicated and
// ordered by game id.
func (s *MemoryStore) GamesForTeams(_ context.Context, teams []string) ([]model.Game, error) {
	seen := make(map[int]struct{})
	var ids []int
	for _, team := range teams {
		for _, id := range s.gamesByTeam[team] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	games := make([]model.Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, s.gamesByID[id])
	}
	return games, nil
}

// GamesByID resolves ids to games, failing on the first unknown id.
func (s *MemoryStore) GamesByID(_ context.Context, ids []int) ([]model.Game, error) {
	games := make([]model.Game, 0, len(ids))
	for _, id := range ids {
		g, ok := s.gamesByID[id]
		if !ok {
			return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
		}
		games = append(games, g)
	}
	return games, nil
}

// OffersForGames returns every offer referencing the given games, in catalog
// order per game.
func (s *MemoryStore) OffersForGames(_ context.Context, gameIDs []int) ([]model.Offer, error) {
	var offers []model.Offer
	for _, id := range gameIDs {
		offers = append(offers, s.offersByGame[id]...)
	}
	return offers, nil
}

// Packages returns a copy of the price list.
func (s *MemoryStore) Packages(_ context.Context) ([]model.Package, error) {
	return append([]model.Package(nil), s.packages...), nil
}

// AllTeams returns a copy of the sorted team list.
func (s *MemoryStore) AllTeams(_ context.Context) ([]string, error) {
	return append([]string(nil), s.teams...), nil
}

// Count reports catalog sizes.
func (s *MemoryStore) Count(_ context.Context) Counts {
	return Counts{
		Games:    len(s.games),
		Offers:   s.offerCount,
		Packages: len(s.packages),
		Teams:    len(s.teams),
	}
}
