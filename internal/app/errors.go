package service

import "errors"

// Sentinel errors returned by the service.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrInvalidSort   = errors.New("invalid sort key")
	ErrSquadNotFound = errors.New("squad not found")
)
