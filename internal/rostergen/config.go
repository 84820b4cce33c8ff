// Package rostergen generates random rosters and checks a running squads
// server against them.
package rostergen

import "time"

// Config holds configuration for a generator run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumPlayers int           // Number of players to generate
	Squads     int           // Number of squads to request; 0 skips balancing
	Strategy   string        // Strategy to request; empty uses the server default
	Workers    int           // Number of concurrent workers
	BatchSize  int           // Players per upload request
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Roster file to write; empty skips writing
	Upload     bool          // Upload to BaseURL and verify
	Verbose    bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	PlayersGenerated int
	BatchesUploaded  int
	BatchesFailed    int
	PlayersPlaced    int
	PlayersLeftover  int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
