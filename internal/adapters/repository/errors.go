package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound   = errors.New("not found in catalog")
	ErrBadCatalog = errors.New("malformed catalog data")
)
