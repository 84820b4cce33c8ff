// Package balance partitions a player pool into equally sized squads whose
// cumulative skill ratings are as even as a greedy heuristic can make them.
package balance

import (
	"context"
	"fmt"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/pkg/logger"
)

// Option applies a configuration option to the Partitioner.
type Option func(*Partitioner)

// WithStrategy selects the balancing strategy used for the general case.
func WithStrategy(s Strategy) Option {
	return func(p *Partitioner) {
		if s != nil {
			p.strategy = s
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l logger.Logger) Option {
	return func(p *Partitioner) {
		if l != nil {
			p.logger = l
		}
	}
}

// Partitioner validates balancing requests, handles the degenerate sizes and
// dispatches everything else to a Strategy. It holds no per-call state.
type Partitioner struct {
	strategy Strategy
	logger   logger.Logger
}

// New constructs a Partitioner. The greedy strategy is used unless overridden.
func New(opts ...Option) *Partitioner {
	p := &Partitioner{
		strategy: Greedy{},
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strategy returns the configured strategy.
func (p *Partitioner) Strategy() Strategy {
	return p.strategy
}

// Balance splits pool into squadCount squads of floor(pool.Len()/squadCount)
// players. Assigned players are removed from pool, which is returned holding
// the leftovers. On error pool is not modified.
func (p *Partitioner) Balance(ctx context.Context, squadCount int, pool *model.Pool) ([]model.Squad, *model.Pool, error) {
	n := pool.Len()
	if squadCount < 1 || squadCount > n {
		return nil, pool, fmt.Errorf("%w: %d squads requested for %d players", ErrInvalidSquadCount, squadCount, n)
	}

	var (
		squads   []model.Squad
		strategy = p.strategy.Name()
	)
	switch {
	case squadCount == 1:
		strategy = "single"
		squads = []model.Squad{{Number: 1, Players: pool.Players()}}
		pool.Clear()
	case squadCount == n:
		strategy = "singletons"
		squads = singletons(pool)
	default:
		size := n / squadCount
		var err error
		squads, err = p.strategy.Assign(pool, squadCount, size)
		if err != nil {
			return nil, pool, fmt.Errorf("%s strategy: %w", p.strategy.Name(), err)
		}
	}

	p.logger.Debug(ctx, "balanced squads",
		logger.String("strategy", strategy),
		logger.Int("players", n),
		logger.Int("squads", len(squads)),
		logger.Int("leftover", pool.Len()),
	)
	return squads, pool, nil
}

// singletons gives every player a squad of their own, numbering from the back
// of the pool: the last player joins squad 1.
func singletons(pool *model.Pool) []model.Squad {
	players := pool.Players()
	squads := make([]model.Squad, len(players))
	for i := range players {
		squads[i] = model.Squad{Number: i + 1, Players: []model.Player{players[len(players)-1-i]}}
	}
	pool.Clear()
	return squads
}
