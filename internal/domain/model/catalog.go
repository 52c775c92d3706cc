// Package model contains domain models passed between layers.
package model

import "time"

// Game represents a single match a viewer wants to watch.
// Fields mirror the catalog CSV schema for games.
type Game struct {
	ID         int       // unique, stable game identifier
	TeamHome   string    // home participant name
	TeamAway   string    // away participant name
	StartsAt   time.Time // scheduled kickoff
	Tournament string    // tournament/competition name
}

// Offer states that a streaming package covers one game, per facet.
// An offer with both flags false conveys no coverage at all.
type Offer struct {
	GameID     int  // referenced game
	PackageID  int  // covering streaming package
	Live       bool // live broadcast covered
	Highlights bool // highlights covered
}

// Package is a purchasable streaming subscription with its price points.
// Prices are minor currency units (cents). A zero monthly price means the
// package is sold as a yearly subscription only; zero on both means the
// price is unknown.
type Package struct {
	ID                int
	Name              string
	MonthlyPriceCents int
	YearlyPriceCents  int // monthly price when paid as a yearly subscription
}
