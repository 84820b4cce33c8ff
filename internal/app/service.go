// Package service provides the roster service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/squads/internal/adapters/repository"
	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/balance"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
)

// Roster load sources used as the "source" metric label.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

// Sort keys accepted by Players besides skill names.
const (
	SortNone = ""
	SortName = "name"
)

// Service implements the API dependencies for the roster service.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	ownStore bool

	// Configuration
	rosterPath string
	strategy   string
	maxSquads  int

	// State
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRosterPath sets the roster file loaded on start and on reset.
func WithRosterPath(path string) Option {
	return func(s *Service) {
		s.rosterPath = path
	}
}

// WithStrategy sets the strategy used when a request names none.
func WithStrategy(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.strategy = name
		}
	}
}

// WithMaxSquads caps the squad count a request may ask for. Zero means no cap.
func WithMaxSquads(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxSquads = n
		}
	}
}

// WithStore replaces the default in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		strategy: balance.GreedyName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates the store and loads the configured roster.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if _, err := balance.Lookup(s.strategy); err != nil {
		return err
	}

	s.logger.Info(ctx, "starting roster service...")
	if s.store == nil {
		s.store = repository.NewMemoryStore(ctx)
		s.ownStore = true
	}
	if err := s.loadRoster(ctx, s.store); err != nil {
		s.releaseStore()
		return err
	}

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.String("strategy", s.strategy),
		logger.String("roster", s.rosterPath),
		logger.Int("players", s.store.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.releaseStore()
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// releaseStore closes and drops a store created by Start so a restart gets a
// fresh one. Callers hold mu.
func (s *Service) releaseStore() {
	if !s.ownStore {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.store = nil
	s.ownStore = false
}

func (s *Service) loadRoster(ctx context.Context, store repository.Store) error {
	if s.rosterPath == "" {
		return nil
	}
	pool, err := roster.LoadFile(s.rosterPath)
	if err != nil {
		metrics.RecordRosterLoad(SourceFile, metrics.OutcomeError, 0)
		return fmt.Errorf("load roster %s: %w", s.rosterPath, err)
	}
	if err := store.Add(ctx, pool.Players()...); err != nil {
		metrics.RecordRosterLoad(SourceFile, metrics.OutcomeError, pool.Len())
		return fmt.Errorf("load roster %s: %w", s.rosterPath, err)
	}
	metrics.RecordRosterLoad(SourceFile, metrics.OutcomeOK, 0)
	metrics.UpdateWaitingListSize(store.Count(ctx))
	return nil
}

// ready returns the store of a started service.
func (s *Service) ready() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Players returns the waiting list. sortKey is empty for pool order, "name",
// or a skill name for ascending order by that skill.
func (s *Service) Players(ctx context.Context, sortKey string) ([]model.Player, error) {
	store, err := s.ready()
	if err != nil {
		return nil, err
	}
	pool := store.Snapshot(ctx).Pool()
	switch sortKey {
	case SortNone:
		return pool.Players(), nil
	case SortName:
		return pool.SortedByName(), nil
	}
	skill, err := model.ParseSkill(sortKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSort, err)
	}
	return pool.Sorted(skill), nil
}

// ImportRoster decodes a roster document and appends its players to the
// waiting list. Nothing is added when any player is rejected.
func (s *Service) ImportRoster(ctx context.Context, r io.Reader, format roster.Format) (int, error) {
	store, err := s.ready()
	if err != nil {
		return 0, err
	}
	players, err := roster.Decode(r, format)
	if err != nil {
		metrics.RecordRosterLoad(SourceHTTP, metrics.OutcomeError, 0)
		return 0, err
	}
	if err := store.Add(ctx, players...); err != nil {
		metrics.RecordRosterLoad(SourceHTTP, metrics.OutcomeError, len(players))
		return 0, err
	}
	metrics.RecordRosterLoad(SourceHTTP, metrics.OutcomeOK, 0)
	metrics.UpdateWaitingListSize(store.Count(ctx))
	s.logger.Debug(ctx, "imported roster", logger.Int("players", len(players)))
	return len(players), nil
}

// Balance forms count squads from the waiting list with the named strategy,
// or the configured one when name is empty. Assigned players leave the
// waiting list and the result becomes the latest.
func (s *Service) Balance(ctx context.Context, count int, name string) (types.Result, error) {
	store, err := s.ready()
	if err != nil {
		return types.Result{}, err
	}
	if name == "" {
		name = s.strategy
	}
	strategy, err := balance.Lookup(name)
	if err != nil {
		return types.Result{}, err
	}
	if s.maxSquads > 0 && count > s.maxSquads {
		_ = metrics.RecordBalance(name, metrics.OutcomeInvalidCount, 0)
		return types.Result{}, fmt.Errorf("%w: %d squads requested, limit is %d", balance.ErrInvalidSquadCount, count, s.maxSquads)
	}

	snap := store.Snapshot(ctx)
	start := time.Now()
	squads, leftover, err := balance.New(
		balance.WithStrategy(strategy),
		balance.WithLogger(s.logger),
	).Balance(ctx, count, snap.Pool())
	ms := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, balance.ErrInvalidSquadCount) {
			outcome = metrics.OutcomeInvalidCount
		}
		_ = metrics.RecordBalance(name, outcome, ms)
		return types.Result{}, err
	}

	result := types.NewResult(uuid.NewString(), name, count, squads, leftover.Players())

	if err := store.Commit(ctx, snap.Version, leftover, result); err != nil {
		_ = metrics.RecordBalance(name, metrics.OutcomeError, ms)
		return types.Result{}, err
	}

	_ = metrics.RecordBalance(name, metrics.OutcomeOK, ms)
	metrics.RecordAssignment(len(snap.Players)-leftover.Len(), leftover.Len())
	for skill, spread := range result.Spread {
		metrics.UpdateSquadSpread(skill, spread)
	}
	metrics.UpdateWaitingListSize(leftover.Len())

	s.logger.Info(ctx, "squads formed",
		logger.String("run_id", result.RunID),
		logger.String("strategy", name),
		logger.Int("squads", len(squads)),
		logger.Int("leftover", leftover.Len()),
		logger.Float64("duration_ms", ms),
	)
	return result, nil
}

// LatestResult returns the most recent balancing result.
func (s *Service) LatestResult(ctx context.Context) (types.Result, error) {
	store, err := s.ready()
	if err != nil {
		return types.Result{}, err
	}
	return store.Latest(ctx)
}

// Squad returns squad n of the latest result.
func (s *Service) Squad(ctx context.Context, n int) (types.SquadView, error) {
	res, err := s.LatestResult(ctx)
	if err != nil {
		return types.SquadView{}, err
	}
	view, ok := res.Squad(n)
	if !ok {
		return types.SquadView{}, fmt.Errorf("%w: %d", ErrSquadNotFound, n)
	}
	return view, nil
}

// Reset clears the waiting list and the latest result, then reloads the
// configured roster file.
func (s *Service) Reset(ctx context.Context) error {
	store, err := s.ready()
	if err != nil {
		return err
	}
	store.Reset(ctx)
	metrics.UpdateWaitingListSize(0)
	s.logger.Info(ctx, "roster reset")
	return s.loadRoster(ctx, store)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":    s.started,
		"strategy":   s.strategy,
		"maxSquads":  s.maxSquads,
		"rosterPath": s.rosterPath,
		"strategies": balance.Names(),
	}
	if s.started {
		stats["waiting"] = s.store.Count(ctx)
		if res, err := s.store.Latest(ctx); err == nil {
			stats["lastRunId"] = res.RunID
			stats["squads"] = len(res.Squads)
		}
	}
	return stats
}
