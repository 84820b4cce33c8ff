// Package aggregate summarises squads: per-skill totals, floor averages and
// the synthetic average row shown under a squad's players.
package aggregate

import (
	"github.com/samber/lo"

	"github.com/okian/squads/internal/domain/model"
)

// AverageLabel is the display name of an average row.
const AverageLabel = "Average"

// AggregateRow is the mean rating per skill across a squad. It is a separate
// type from model.Player so it can never be counted or compared as one.
type AggregateRow struct {
	Squad    int
	Players  int
	Averages model.Profile
}

// Label returns the display name of the row.
func (AggregateRow) Label() string { return AverageLabel }

// Total sums one skill over the squad's players.
func Total(squad model.Squad, s model.Skill) int {
	return lo.SumBy(squad.Players, func(p model.Player) int { return p.Skills[s] })
}

// Totals sums every skill over the squad's players.
func Totals(squad model.Squad) model.Profile {
	var out model.Profile
	for _, p := range squad.Players {
		out = out.Add(p.Skills)
	}
	return out
}

// Average is the floor of Total over the player count; an empty squad
// averages zero.
func Average(squad model.Squad, s model.Skill) int {
	if len(squad.Players) == 0 {
		return 0
	}
	return Total(squad, s) / len(squad.Players)
}

// Row builds the average row for squad.
func Row(squad model.Squad) AggregateRow {
	row := AggregateRow{Squad: squad.Number, Players: len(squad.Players)}
	for _, s := range model.Skills {
		row.Averages[s] = Average(squad, s)
	}
	return row
}

// Spread returns, per skill, the gap between the highest and lowest squad
// total. Zero means the squads are perfectly even in that skill.
func Spread(squads []model.Squad) model.Profile {
	var out model.Profile
	if len(squads) == 0 {
		return out
	}
	totals := lo.Map(squads, func(sq model.Squad, _ int) model.Profile { return Totals(sq) })
	for _, s := range model.Skills {
		perSquad := lo.Map(totals, func(t model.Profile, _ int) int { return t[s] })
		out[s] = lo.Max(perSquad) - lo.Min(perSquad)
	}
	return out
}
