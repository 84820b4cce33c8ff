package rostergen

import (
	"errors"
	"fmt"

	"github.com/okian/squads/internal/domain/aggregate"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
)

// ErrVerification reports a result that breaks a balancing invariant.
var ErrVerification = errors.New("verification failed")

// Verify checks a balancing result against the pool it was formed from:
// the requested number of squads, equal squad sizes of floor(n/count), every
// player placed exactly once across squads and leftover, leftovers in pool
// order, and one trailing average row per squad holding floored averages.
func Verify(pool []model.Player, res types.Result) error {
	n := len(pool)
	if len(res.Squads) != res.Requested {
		return fmt.Errorf("%w: %d squads for %d requested", ErrVerification, len(res.Squads), res.Requested)
	}
	if res.Requested < 1 {
		return fmt.Errorf("%w: no squads requested", ErrVerification)
	}
	size := n / res.Requested

	byID := make(map[string]model.Player, n)
	order := make(map[string]int, n)
	for i, p := range pool {
		byID[p.ID] = p
		order[p.ID] = i
	}
	seen := make(map[string]bool, n)
	place := func(id string) error {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("%w: unknown player %s", ErrVerification, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: player %s placed twice", ErrVerification, id)
		}
		seen[id] = true
		return nil
	}

	numbers := make(map[int]bool, len(res.Squads))
	for _, v := range res.Squads {
		if v.Number < 1 || v.Number > res.Requested || numbers[v.Number] {
			return fmt.Errorf("%w: bad squad number %d", ErrVerification, v.Number)
		}
		numbers[v.Number] = true

		rows := v.Players()
		if len(rows) != size || v.Size != size {
			return fmt.Errorf("%w: squad %d has %d players, want %d", ErrVerification, v.Number, len(rows), size)
		}
		squad := model.Squad{Number: v.Number}
		for _, r := range rows {
			if err := place(r.ID); err != nil {
				return err
			}
			squad.Players = append(squad.Players, byID[r.ID])
		}
		if err := verifyAverage(v, squad); err != nil {
			return err
		}
	}

	last := -1
	for _, r := range res.Leftover {
		if err := place(r.ID); err != nil {
			return err
		}
		if order[r.ID] < last {
			return fmt.Errorf("%w: leftover %s out of pool order", ErrVerification, r.ID)
		}
		last = order[r.ID]
	}
	if len(seen) != n {
		return fmt.Errorf("%w: %d of %d players accounted for", ErrVerification, len(seen), n)
	}
	return nil
}

func verifyAverage(v types.SquadView, squad model.Squad) error {
	if len(v.Rows) == 0 || !v.Rows[len(v.Rows)-1].IsAverage() {
		return fmt.Errorf("%w: squad %d does not end with an average row", ErrVerification, v.Number)
	}
	avg, _ := v.Average()
	want := types.AverageRow(aggregate.Row(squad))
	if avg.Skating != want.Skating || avg.Shooting != want.Shooting || avg.Checking != want.Checking {
		return fmt.Errorf("%w: squad %d average %v, want %v", ErrVerification, v.Number, avg, want)
	}
	return nil
}
