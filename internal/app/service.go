// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osmanp/streampack/internal/adapters/repository"
	"github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
	"github.com/osmanp/streampack/internal/domain/rank"
	"github.com/osmanp/streampack/internal/domain/solver"
	"github.com/osmanp/streampack/internal/domain/types"
	"github.com/osmanp/streampack/pkg/logger"
	"github.com/osmanp/streampack/pkg/metrics"
)

// Service implements the coverage-recommendation API on top of a catalog
// store and the two greedy solvers.
type Service struct {
	mu sync.RWMutex

	catalog         repository.Store
	maxAlternatives int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the catalog store the service reads from.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.catalog = store
		}
	}
}

// WithMaxAlternatives caps the number of partial-coverage passes.
func WithMaxAlternatives(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAlternatives = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxAlternatives: solver.DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start readies the service. The catalog must have been supplied.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.catalog == nil {
		return ErrNoCatalog
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	counts := s.catalog.Count(ctx)
	metrics.UpdateCatalogCounts(counts.Games, counts.Offers, counts.Packages, counts.Teams)
	s.logger.Info(ctx, "coverage service started",
		logger.Int("games", counts.Games),
		logger.Int("offers", counts.Offers),
		logger.Int("packages", counts.Packages),
		logger.Int("maxAlternatives", s.maxAlternatives),
	)

	s.started = true
	return nil
}

// Stop shuts the service down. The catalog is immutable so there is nothing
// to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "coverage service stopped")
}

// StreamingPackages computes ranked provider combinations covering both
// facets of every game the given teams play. priceLimit, when non-nil, is a
// ceiling in whole currency units; a non-positive value is an input error.
func (s *Service) StreamingPackages(ctx context.Context, teams []string, priceLimit *int) (types.StreamingPackagesResponse, error) {
	start := time.Now()

	if priceLimit != nil && *priceLimit <= 0 {
		return types.StreamingPackagesResponse{}, rank.ErrInvalidPriceCeiling
	}

	games, err := s.catalog.GamesForTeams(ctx, teams)
	if err != nil {
		return types.StreamingPackagesResponse{}, err
	}
	if len(games) == 0 {
		return types.StreamingPackagesResponse{StreamingPackages: []types.PackageCombo{}}, nil
	}

	gameIDs := make([]int, len(games))
	gamesByID := make(map[int]model.Game, len(games))
	for i, g := range games {
		gameIDs[i] = g.ID
		gamesByID[g.ID] = g
	}

	offers, err := s.catalog.OffersForGames(ctx, gameIDs)
	if err != nil {
		return types.StreamingPackagesResponse{}, err
	}
	for _, o := range offers {
		if _, ok := gamesByID[o.GameID]; !ok {
			return types.StreamingPackagesResponse{}, fmt.Errorf("offer for package %d references game %d: %w", o.PackageID, o.GameID, ErrUnknownGame)
		}
	}

	packages, err := s.catalog.Packages(ctx)
	if err != nil {
		return types.StreamingPackagesResponse{}, err
	}
	in := solver.Input{
		Games:    games,
		Grouping: coverage.GroupOffersByProvider(offers),
		Costs:    coverage.EffectiveCosts(packages),
	}

	var combos []*coverage.Combination
	full, ok := solver.FullCover(in)
	if ok {
		combos = append(combos, full)
		metrics.RecordSolveOutcome("full")
	} else {
		metrics.RecordSolveOutcome("partial")
	}
	// Partial alternatives back a full result only when the caller gave a
	// budget to filter against; otherwise the single full cover is the answer.
	if !ok || priceLimit != nil {
		alts := solver.Alternatives(in, solver.WithMaxPasses(s.maxAlternatives))
		metrics.RecordAlternativesGenerated(len(alts))
		combos = append(combos, alts...)
	}

	cands := rank.Build(games, combos, in.Costs)
	cands = rank.Dedupe(cands)
	rank.Order(cands)
	if priceLimit != nil {
		cands, err = rank.FilterByCeiling(cands, *priceLimit)
		if err != nil {
			return types.StreamingPackagesResponse{}, err
		}
	}

	resp := assemble(games, gamesByID, packages, cands)

	metrics.RecordSolveDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordCombinationsReturned(len(resp.StreamingPackages))
	s.logger.Debug(ctx, "coverage computed",
		logger.Int("games", len(games)),
		logger.Int("providers", len(in.Grouping)),
		logger.Int("combinations", len(resp.StreamingPackages)),
	)
	return resp, nil
}

// Games returns the games the given teams play, in catalog order.
func (s *Service) Games(ctx context.Context, teams []string) ([]types.Game, error) {
	games, err := s.catalog.GamesForTeams(ctx, teams)
	if err != nil {
		return nil, err
	}
	out := make([]types.Game, len(games))
	for i, g := range games {
		out[i] = types.Game{
			ID:         g.ID,
			TeamHome:   g.TeamHome,
			TeamAway:   g.TeamAway,
			StartsAt:   g.StartsAt,
			Tournament: g.Tournament,
		}
	}
	return out, nil
}

// Teams returns every team in the catalog, sorted.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	return s.catalog.AllTeams(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"maxAlternatives": s.maxAlternatives,
	}
	if s.catalog != nil {
		counts := s.catalog.Count(context.Background())
		stats["games"] = counts.Games
		stats["offers"] = counts.Offers
		stats["packages"] = counts.Packages
		stats["teams"] = counts.Teams
	}
	return stats
}
