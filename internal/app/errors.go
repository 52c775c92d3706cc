package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNoCatalog means the service was started without a catalog store.
	ErrNoCatalog = errors.New("no catalog store configured")

	// ErrUnknownGame is a data-integrity fault: an offer references a game
	// absent from the request's game list.
	ErrUnknownGame = errors.New("offer references unknown game")
)
