package balance

import "errors"

// Sentinel kinds for balancing errors.
var (
	ErrInvalidSquadCount = errors.New("invalid squad count")
	ErrUnknownStrategy   = errors.New("unknown balancing strategy")
)
