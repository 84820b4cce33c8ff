package balance

import (
	"slices"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/seeding"
)

// Tournament ranks players by their peak rating, lays them out in
// single-elimination seed order and slices that order into consecutive
// squads. Squads are returned in number order.
type Tournament struct{}

// Name implements Strategy.
func (Tournament) Name() string { return TournamentName }

type seeded struct {
	player model.Player
	slot   int
}

// Assign implements Strategy.
func (Tournament) Assign(pool *model.Pool, squadCount, squadSize int) ([]model.Squad, error) {
	bracket, err := Bracket(pool.Players())
	if err != nil {
		return nil, err
	}

	squads := make([]model.Squad, squadCount)
	picked := make(map[string]struct{}, squadCount*squadSize)
	for k := range squads {
		run := bracket[k*squadSize : (k+1)*squadSize]
		squads[k] = model.Squad{Number: k + 1, Players: slices.Clone(run)}
		for _, p := range run {
			picked[p.ID] = struct{}{}
		}
	}

	pool.RemoveFunc(func(p model.Player) bool {
		_, ok := picked[p.ID]
		return ok
	})
	return squads, nil
}

// Bracket returns players in seed order: ranked by peak rating descending
// (stable), then ordered by the bit-reversed rank. Colliding slots keep rank
// order.
func Bracket(players []model.Player) ([]model.Player, error) {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b model.Player) int {
		return b.Skills.Peak() - a.Skills.Peak()
	})

	seeds := make([]seeded, len(ranked))
	for i, p := range ranked {
		slot, err := seeding.BitReverse(i+1, len(ranked))
		if err != nil {
			return nil, err
		}
		seeds[i] = seeded{player: p, slot: slot}
	}
	slices.SortStableFunc(seeds, func(a, b seeded) int {
		return a.slot - b.slot
	})

	out := make([]model.Player, len(seeds))
	for i, s := range seeds {
		out[i] = s.player
	}
	return out, nil
}
