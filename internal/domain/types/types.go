// Package types contains the wire shapes shared between the engine and the
// HTTP API.
package types

import "time"

// GameCoverage is a game annotated with the facets one provider covers
// for it.
type GameCoverage struct {
	ID         int       `json:"id"`
	TeamHome   string    `json:"team_home"`
	TeamAway   string    `json:"team_away"`
	StartsAt   time.Time `json:"starts_at"`
	Tournament string    `json:"tournament_name"`
	Live       bool      `json:"live"`
	Highlights bool      `json:"highlights"`
}

// PackageEntry is one provider inside a recommended combination.
type PackageEntry struct {
	ProviderID   int            `json:"provider_id"`
	ProviderName string         `json:"provider_name"`
	YearlySub    bool           `json:"yearly_sub"`
	CostCents    int            `json:"cost_cents"`
	Games        []GameCoverage `json:"games"`
}

// PackageCombo is one ranked combination in the response.
type PackageCombo struct {
	TotalMatches   int            `json:"total_matches"`
	CoveredMatches int            `json:"covered_matches"`
	Packages       []PackageEntry `json:"packages"`
}

// StreamingPackagesResponse is the body of POST /api/streaming-packages.
type StreamingPackagesResponse struct {
	StreamingPackages []PackageCombo `json:"streaming_packages"`
}

// Game is the wire shape of a catalog game.
type Game struct {
	ID         int       `json:"id"`
	TeamHome   string    `json:"team_home"`
	TeamAway   string    `json:"team_away"`
	StartsAt   time.Time `json:"starts_at"`
	Tournament string    `json:"tournament_name"`
}
