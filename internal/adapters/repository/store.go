// Package repository defines the catalog store interface and its in-memory
// implementation.
package repository

import (
	"context"

	"github.com/osmanp/streampack/internal/domain/model"
)

// Counts is a catalog size snapshot used for stats and metrics.
type Counts struct {
	Games    int
	Offers   int
	Packages int
	Teams    int
}

// Store provides read access to the streaming catalog. All methods return
// copies; callers own what they receive and may mutate it freely.
type Store interface {
	// GamesForTeams returns every game where one of the teams plays home
	// or away, ordered by game id. Unknown teams contribute no games.
	GamesForTeams(ctx context.Context, teams []string) ([]model.Game, error)

	// GamesByID resolves game ids. Returns ErrNotFound if any id is unknown.
	GamesByID(ctx context.Context, ids []int) ([]model.Game, error)

	// OffersForGames returns all offers referencing the given games.
	OffersForGames(ctx context.Context, gameIDs []int) ([]model.Offer, error)

	// Packages returns the full price list, ordered by package id.
	Packages(ctx context.Context) ([]model.Package, error)

	// AllTeams returns every distinct team name, sorted.
	AllTeams(ctx context.Context) ([]string, error)

	// Count reports catalog sizes.
	Count(ctx context.Context) Counts
}
