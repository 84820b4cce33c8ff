// Package repository holds the waiting list and the latest balancing result.
package repository

import (
	"context"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
)

// Snapshot is an immutable copy of the waiting list. Version changes on
// every write and guards Commit against lost updates.
type Snapshot struct {
	Version uint64
	Players []model.Player
}

// Pool returns a fresh pool holding the snapshot's players.
func (s Snapshot) Pool() *model.Pool {
	// Players came out of a pool, so ids are already unique.
	pool, _ := model.NewPool(s.Players...)
	return pool
}

// Store provides read/write access to the waiting list and squad results.
type Store interface {
	// Add appends players to the waiting list. Either all players are added
	// or none are.
	Add(ctx context.Context, players ...model.Player) error

	// Get returns a waiting player by id.
	// Returns ErrNotFound if the player is not waiting.
	Get(ctx context.Context, id string) (model.Player, error)

	// Snapshot returns the current waiting list.
	Snapshot(ctx context.Context) Snapshot

	// Commit replaces the waiting list with leftover and records result,
	// provided nothing was written since the snapshot at version.
	// Returns ErrStale otherwise.
	Commit(ctx context.Context, version uint64, leftover *model.Pool, result types.Result) error

	// Latest returns the most recent committed result.
	// Returns ErrNoResult before the first commit.
	Latest(ctx context.Context) (types.Result, error)

	// Reset empties the waiting list and forgets the latest result.
	Reset(ctx context.Context)

	// Count returns the number of waiting players.
	Count(ctx context.Context) int
}
