// Package loadtest fires concurrent coverage requests at a running
// streampack server and verifies the ranking, deduplication, and budget
// invariants of every response.
package loadtest

import "time"

// Config holds configuration for a load test run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of coverage requests to send
	Workers     int           // Number of concurrent workers
	MaxTeams    int           // Max team names per generated request
	LimitRatio  float64       // Fraction of requests carrying a price limit
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// PackagesRequest is the wire shape of POST /api/streaming-packages.
type PackagesRequest struct {
	TeamNames  []string `json:"team_names"`
	PriceLimit *int     `json:"price_limit,omitempty"`
}

// GameCoverage mirrors one covered game in a response.
type GameCoverage struct {
	ID         int    `json:"id"`
	Live       bool   `json:"live"`
	Highlights bool   `json:"highlights"`
	TeamHome   string `json:"team_home"`
	TeamAway   string `json:"team_away"`
}

// PackageEntry mirrors one provider in a combination.
type PackageEntry struct {
	ProviderID int            `json:"provider_id"`
	YearlySub  bool           `json:"yearly_sub"`
	CostCents  int            `json:"cost_cents"`
	Games      []GameCoverage `json:"games"`
}

// PackageCombo mirrors one ranked combination.
type PackageCombo struct {
	TotalMatches   int            `json:"total_matches"`
	CoveredMatches int            `json:"covered_matches"`
	Packages       []PackageEntry `json:"packages"`
}

// PackagesResponse mirrors the response body.
type PackagesResponse struct {
	StreamingPackages []PackageCombo `json:"streaming_packages"`
}

// Stats holds load test statistics.
type Stats struct {
	RequestsSent     int
	RequestsOK       int
	RequestsFailed   int
	CombosReturned   int
	VerifyViolations int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
