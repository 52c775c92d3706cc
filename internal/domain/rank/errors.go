package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrInvalidPriceCeiling marks a non-positive price ceiling, which is a
	// caller input error rather than an empty filter.
	ErrInvalidPriceCeiling = errors.New("price ceiling must be positive")
)
