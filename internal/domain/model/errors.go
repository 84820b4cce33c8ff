package model

import "errors"

// Sentinel kinds for model errors.
var (
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrNegativeRating  = errors.New("negative rating")
	ErrEmptyPlayerID   = errors.New("empty player id")
	ErrDuplicatePlayer = errors.New("duplicate player id")
	ErrPlayerNotFound  = errors.New("player not found")
)
