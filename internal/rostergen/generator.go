package rostergen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/pkg/logger"
)

// Rating tiers. Each tier is a [min, max] band a skill is drawn from.
var tiers = [...][2]int{
	{40, 70}, // average, most common
	{40, 70},
	{70, 90}, // strong
	{10, 40}, // weak
	{90, MaxRating},
	{MinRating, 10},
	{MinRating, MaxRating},
}

var firstNames = []string{
	"Wayne", "Connor", "Sidney", "Mario", "Bobby", "Gordie", "Jaromir", "Hayley",
	"Cammi", "Marie-Philip", "Auston", "Nathan", "Cale", "Kendall", "Hilary", "Ben",
}

var lastNames = []string{
	"Gretzky", "McDavid", "Crosby", "Lemieux", "Orr", "Howe", "Jagr", "Wickenheiser",
	"Granato", "Poulin", "Matthews", "MacKinnon", "Makar", "Coyne", "Knight", "Schreiber",
}

// randInt returns a uniform value in [lo, hi] using crypto/rand.
func randInt(lo, hi int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		return lo
	}
	return lo + int(n.Int64())
}

// Generate creates n players with unique uuid ids and ratings in
// [MinRating, MaxRating], spread over workers goroutines.
func Generate(ctx context.Context, n, workers int) ([]model.Player, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative player count %d", n)
	}
	logger.Get().Info(ctx, "generating players", logger.Int("players", n))

	players := make([]model.Player, n)
	if n == 0 {
		return players, nil
	}

	type playerResult struct {
		index  int
		player model.Player
		err    error
	}
	resultChan := make(chan playerResult, n)

	workerCount := max(1, min(workers, n))
	perWorker := n / workerCount
	for worker := range workerCount {
		start := worker * perWorker
		end := start + perWorker
		if worker == workerCount-1 {
			end = n
		}
		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- playerResult{index: i, err: ctx.Err()}
					return
				default:
					p, err := generateSinglePlayer()
					resultChan <- playerResult{index: i, player: p, err: err}
				}
			}
		}(start, end)
	}

	for range n {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during generation: %w", ctx.Err())
		case res := <-resultChan:
			if res.err != nil {
				return nil, fmt.Errorf("failed to generate player %d: %w", res.index, res.err)
			}
			players[res.index] = res.player
		}
	}

	logger.Get().Info(ctx, "generated players", logger.Int("count", len(players)))
	return players, nil
}

func generateSinglePlayer() (model.Player, error) {
	var profile model.Profile
	for _, s := range model.Skills {
		tier := tiers[randInt(0, len(tiers)-1)]
		profile[s] = randInt(tier[0], tier[1])
	}
	name := firstNames[randInt(0, len(firstNames)-1)] + " " + lastNames[randInt(0, len(lastNames)-1)]
	return model.NewPlayer(uuid.NewString(), name, profile)
}
