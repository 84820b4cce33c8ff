package rostergen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
)

// Run generates a roster, writes it when OutputFile is set, and when Upload
// is set resets the server, uploads the roster, requests squads and verifies
// the result against the server's waiting list.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting roster generator",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("players", cfg.NumPlayers),
		logger.Int("squads", cfg.Squads),
		logger.String("strategy", cfg.Strategy),
		logger.Int("workers", cfg.Workers),
		logger.Any("upload", cfg.Upload))

	players, err := Generate(ctx, cfg.NumPlayers, cfg.Workers)
	if err != nil {
		return stats, fmt.Errorf("generation failed: %w", err)
	}
	stats.PlayersGenerated = len(players)

	if cfg.OutputFile != "" {
		if err := saveRoster(ctx, cfg.OutputFile, players); err != nil {
			return stats, fmt.Errorf("save roster: %w", err)
		}
	}

	if cfg.Upload {
		if err := uploadAndVerify(ctx, cfg, players, stats); err != nil {
			return stats, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)
	return stats, nil
}

func uploadAndVerify(ctx context.Context, cfg *Config, players []model.Player, stats *Stats) error {
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	if err := client.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	if err := uploadBatches(ctx, client, cfg, players, stats); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	if cfg.Squads == 0 {
		return nil
	}

	// Batches land in any order, so the server's list is the pool of record.
	waiting, err := client.Waiting(ctx)
	if err != nil {
		return fmt.Errorf("fetch waiting list: %w", err)
	}
	generated := make(map[string]model.Player, len(players))
	for _, p := range players {
		generated[p.ID] = p
	}
	pool := make([]model.Player, 0, len(waiting))
	for _, r := range waiting {
		p, ok := generated[r.ID]
		if !ok {
			return fmt.Errorf("%w: server lists unknown player %s", ErrVerification, r.ID)
		}
		pool = append(pool, p)
	}
	if len(pool) != len(players) {
		return fmt.Errorf("%w: server holds %d of %d players", ErrVerification, len(pool), len(players))
	}

	res, err := client.Balance(ctx, cfg.Squads, cfg.Strategy)
	if err != nil {
		return fmt.Errorf("balance failed: %w", err)
	}
	if err := Verify(pool, res); err != nil {
		return err
	}
	stats.PlayersLeftover = len(res.Leftover)
	stats.PlayersPlaced = len(pool) - stats.PlayersLeftover

	logger.Get().Info(ctx, "result verified",
		logger.String("run_id", res.RunID),
		logger.String("strategy", res.Strategy),
		logger.Any("spread", res.Spread))
	return nil
}

// saveRoster writes players as a roster document; the format follows the
// file extension.
func saveRoster(ctx context.Context, filename string, players []model.Player) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()
	if err := roster.Encode(file, players, roster.FormatFromPath(filename)); err != nil {
		return err
	}
	logger.Get().Info(ctx, "roster saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("batchesUploaded", stats.BatchesUploaded),
		logger.Int("batchesFailed", stats.BatchesFailed),
		logger.Int("playersPlaced", stats.PlayersPlaced),
		logger.Int("playersLeftover", stats.PlayersLeftover),
		logger.String("duration", stats.Duration.String()))
}
