package loadtest

import (
	"crypto/rand"
	"math/big"
)

// Price-limit generation bounds, in whole currency units.
const (
	minPriceLimit   = 5
	priceLimitRange = 100
)

// randomInt returns a uniform random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateRequests builds request plans from the catalog's team list:
// random team subsets, a configured fraction carrying a price limit.
func generateRequests(cfg *Config, teams []string) []PackagesRequest {
	reqs := make([]PackagesRequest, cfg.NumRequests)
	for i := range reqs {
		count := 1 + randomInt(cfg.MaxTeams)
		if count > len(teams) {
			count = len(teams)
		}
		picked := make([]string, count)
		for j := range picked {
			picked[j] = teams[randomInt(len(teams))]
		}
		reqs[i].TeamNames = picked

		if float64(randomInt(100))/100.0 < cfg.LimitRatio {
			limit := minPriceLimit + randomInt(priceLimitRange)
			reqs[i].PriceLimit = &limit
		}
	}
	return reqs
}
