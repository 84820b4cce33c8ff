package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrInvalidRoster     = errors.New("invalid roster")
	ErrUnsupportedFormat = errors.New("unsupported roster format")
)
