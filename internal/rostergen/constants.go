package rostergen

// Rating bounds for generated players.
const (
	MinRating = 1
	MaxRating = 99
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)
