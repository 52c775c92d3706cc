package loadtest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VerifyResponse checks the externally observable invariants of one
// response: coverage bounds, monotonic ranking by covered matches,
// provider-set deduplication, and budget respect when a price limit was
// sent. Returns one error per violation.
func VerifyResponse(req PackagesRequest, resp *PackagesResponse) []error {
	var errs []error

	seen := make(map[string]int)
	prevCovered := -1
	for i, combo := range resp.StreamingPackages {
		if combo.CoveredMatches > combo.TotalMatches {
			errs = append(errs, fmt.Errorf("combination %d: covered %d exceeds total %d", i, combo.CoveredMatches, combo.TotalMatches))
		}

		if prevCovered >= 0 && combo.CoveredMatches > prevCovered {
			errs = append(errs, fmt.Errorf("combination %d: covered %d ranked below %d", i, combo.CoveredMatches, prevCovered))
		}
		prevCovered = combo.CoveredMatches

		key := providerKey(combo)
		if j, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("combination %d: duplicate provider set of combination %d", i, j))
		}
		seen[key] = i

		if req.PriceLimit != nil {
			total := 0
			for _, p := range combo.Packages {
				total += p.CostCents
			}
			if total > *req.PriceLimit*100 {
				errs = append(errs, fmt.Errorf("combination %d: cost %d cents exceeds limit %d units", i, total, *req.PriceLimit))
			}
		}
	}
	return errs
}

// providerKey is the sorted provider-id identity of a combination.
func providerKey(combo PackageCombo) string {
	ids := make([]int, len(combo.Packages))
	for i, p := range combo.Packages {
		ids[i] = p.ProviderID
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
