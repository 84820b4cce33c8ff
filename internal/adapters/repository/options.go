package repository

import (
	"time"

	"github.com/okian/squads/internal/domain/model"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}

// WithPool seeds the waiting list with a copy of pool.
func WithPool(pool *model.Pool) Option {
	return func(s *MemoryStore) {
		if pool != nil {
			s.pool = pool.Clone()
		}
	}
}
