package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrNotFound = errors.New("player not found")
	ErrNoResult = errors.New("no squads have been formed")
	ErrStale    = errors.New("waiting list changed since snapshot")
)
