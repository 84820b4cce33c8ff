package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
	"github.com/okian/squads/pkg/metrics"
)

// MemoryStore is an in-memory Store. Reads are served from an atomically
// published snapshot; writes take the mutex and publish a new one.
type MemoryStore struct {
	mu      sync.Mutex
	pool    *model.Pool
	version uint64
	latest  *types.Result

	snapshot atomic.Pointer[Snapshot]

	metricsUpdateInterval time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store and starts its metrics updater,
// which runs until ctx is done or Close is called.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		pool:                  &model.Pool{},
		metricsUpdateInterval: 5 * time.Second,
		stopChan:              make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.publish()
	s.startMetricsUpdater(ctx)
	return s
}

// Close stops the metrics updater.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	return nil
}

// Add implements Store.Add.
func (s *MemoryStore) Add(_ context.Context, players ...model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.pool.Clone()
	for _, p := range players {
		if err := next.Add(p); err != nil {
			return err
		}
	}
	if len(players) == 0 {
		return nil
	}
	s.pool = next
	s.version++
	s.publish()
	return nil
}

// Get implements Store.Get.
func (s *MemoryStore) Get(_ context.Context, id string) (model.Player, error) {
	for _, p := range s.snapshot.Load().Players {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Snapshot implements Store.Snapshot.
func (s *MemoryStore) Snapshot(_ context.Context) Snapshot {
	return *s.snapshot.Load()
}

// Commit implements Store.Commit.
func (s *MemoryStore) Commit(_ context.Context, version uint64, leftover *model.Pool, result types.Result) error {
	if leftover == nil {
		return errors.New("nil leftover pool")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if version != s.version {
		return fmt.Errorf("%w: have version %d, snapshot was %d", ErrStale, s.version, version)
	}
	s.pool = leftover.Clone()
	s.latest = &result
	s.version++
	s.publish()
	return nil
}

// Latest implements Store.Latest.
func (s *MemoryStore) Latest(_ context.Context) (types.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return types.Result{}, ErrNoResult
	}
	return *s.latest, nil
}

// Reset implements Store.Reset.
func (s *MemoryStore) Reset(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Clear()
	s.latest = nil
	s.version++
	s.publish()
}

// Count implements Store.Count.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.snapshot.Load().Players)
}

// publish must be called with mu held.
func (s *MemoryStore) publish() {
	s.snapshot.Store(&Snapshot{Version: s.version, Players: s.pool.Players()})
}

func (s *MemoryStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				metrics.UpdateWaitingListSize(s.Count(ctx))
			}
		}
	}()
}
