// Package types contains common types used across the application
package types

import (
	"github.com/samber/lo"

	"github.com/okian/squads/internal/domain/aggregate"
	"github.com/okian/squads/internal/domain/model"
)

// RowKind tags a display row as a real player or a squad average.
type RowKind string

// Row kinds.
const (
	KindPlayer  RowKind = "player"
	KindAverage RowKind = "average"
)

// Row is one line of a roster or squad table.
type Row struct {
	Kind     RowKind `json:"kind"`
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Skating  int     `json:"skating"`
	Shooting int     `json:"shooting"`
	Checking int     `json:"checking"`
}

// IsAverage reports whether the row is a synthetic average row.
func (r Row) IsAverage() bool { return r.Kind == KindAverage }

// PlayerRow renders a player.
func PlayerRow(p model.Player) Row {
	return Row{
		Kind:     KindPlayer,
		ID:       p.ID,
		Name:     p.Name,
		Skating:  p.Skills[model.Skating],
		Shooting: p.Skills[model.Shooting],
		Checking: p.Skills[model.Checking],
	}
}

// AverageRow renders a squad's average row.
func AverageRow(a aggregate.AggregateRow) Row {
	return Row{
		Kind:     KindAverage,
		Name:     a.Label(),
		Skating:  a.Averages[model.Skating],
		Shooting: a.Averages[model.Shooting],
		Checking: a.Averages[model.Checking],
	}
}

// PlayerRows renders players in order.
func PlayerRows(players []model.Player) []Row {
	return lo.Map(players, func(p model.Player, _ int) Row { return PlayerRow(p) })
}

// SquadView is a squad ready for display: its players followed by one
// average row. Size counts players only.
type SquadView struct {
	Number int   `json:"number"`
	Size   int   `json:"size"`
	Rows   []Row `json:"rows"`
}

// NewSquadView builds the display view of squad.
func NewSquadView(squad model.Squad) SquadView {
	rows := make([]Row, 0, len(squad.Players)+1)
	rows = append(rows, PlayerRows(squad.Players)...)
	rows = append(rows, AverageRow(aggregate.Row(squad)))
	return SquadView{Number: squad.Number, Size: len(squad.Players), Rows: rows}
}

// Players returns the player rows only.
func (v SquadView) Players() []Row {
	return lo.Filter(v.Rows, func(r Row, _ int) bool { return !r.IsAverage() })
}

// Average returns the average row, if present.
func (v SquadView) Average() (Row, bool) {
	return lo.Find(v.Rows, func(r Row) bool { return r.IsAverage() })
}

// SkillMap keys a profile by canonical skill name.
func SkillMap(p model.Profile) map[string]int {
	out := make(map[string]int, len(model.Skills))
	for _, s := range model.Skills {
		out[s.String()] = p[s]
	}
	return out
}

// Result is the outcome of one balancing run.
type Result struct {
	RunID     string         `json:"run_id"`
	Strategy  string         `json:"strategy"`
	Requested int            `json:"requested"`
	Squads    []SquadView    `json:"squads"`
	Leftover  []Row          `json:"leftover"`
	Spread    map[string]int `json:"spread"`
}

// NewResult builds a result from squads in the order given and the players
// left waiting.
func NewResult(runID, strategy string, requested int, squads []model.Squad, leftover []model.Player) Result {
	return Result{
		RunID:     runID,
		Strategy:  strategy,
		Requested: requested,
		Squads:    lo.Map(squads, func(sq model.Squad, _ int) SquadView { return NewSquadView(sq) }),
		Leftover:  PlayerRows(leftover),
		Spread:    SkillMap(aggregate.Spread(squads)),
	}
}

// Squad returns the view for squad number n.
func (r Result) Squad(n int) (SquadView, bool) {
	return lo.Find(r.Squads, func(v SquadView) bool { return v.Number == n })
}
