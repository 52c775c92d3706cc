package service

import (
	"sort"

	"github.com/osmanp/streampack/internal/domain/coverage"
	"github.com/osmanp/streampack/internal/domain/model"
	"github.com/osmanp/streampack/internal/domain/rank"
	"github.com/osmanp/streampack/internal/domain/types"
)

// assemble maps ranked candidates to the outbound response shape. It never
// reorders candidates; ranking is final by the time it runs.
func assemble(games []model.Game, gamesByID map[int]model.Game, packages []model.Package, cands []rank.Candidate) types.StreamingPackagesResponse {
	pkgByID := make(map[int]model.Package, len(packages))
	for _, p := range packages {
		pkgByID[p.ID] = p
	}

	totalMatches := len(games) * 2 // both facets of every game

	combos := make([]types.PackageCombo, 0, len(cands))
	for _, cand := range cands {
		combo := types.PackageCombo{
			TotalMatches:   totalMatches,
			CoveredMatches: cand.Covered,
			Packages:       make([]types.PackageEntry, 0, cand.Combination.Len()),
		}
		for _, id := range cand.Combination.Providers() {
			combo.Packages = append(combo.Packages, packageEntry(id, pkgByID[id], gamesByID, cand.Combination))
		}
		combos = append(combos, combo)
	}
	return types.StreamingPackagesResponse{StreamingPackages: combos}
}

// packageEntry renders one provider of a combination, annotating each of its
// games with the facets this provider covers for it. Offers covering neither
// facet are omitted; several offers for the same game merge into one entry.
func packageEntry(id int, pkg model.Package, gamesByID map[int]model.Game, c *coverage.Combination) types.PackageEntry {
	cost := coverage.EffectiveCostOf(pkg)

	byGame := make(map[int]*types.GameCoverage)
	var order []int
	for _, o := range c.Offers(id) {
		if !o.Live && !o.Highlights {
			continue
		}
		gc, ok := byGame[o.GameID]
		if !ok {
			g := gamesByID[o.GameID]
			gc = &types.GameCoverage{
				ID:         g.ID,
				TeamHome:   g.TeamHome,
				TeamAway:   g.TeamAway,
				StartsAt:   g.StartsAt,
				Tournament: g.Tournament,
			}
			byGame[o.GameID] = gc
			order = append(order, o.GameID)
		}
		gc.Live = gc.Live || o.Live
		gc.Highlights = gc.Highlights || o.Highlights
	}
	sort.Ints(order)

	entry := types.PackageEntry{
		ProviderID:   id,
		ProviderName: pkg.Name,
		YearlySub:    cost.Yearly,
		Games:        make([]types.GameCoverage, 0, len(order)),
	}
	if !cost.Amount.IsInfinite() {
		entry.CostCents = int(cost.Amount)
	}
	for _, gameID := range order {
		entry.Games = append(entry.Games, *byGame[gameID])
	}
	return entry
}
