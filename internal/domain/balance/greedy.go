package balance

import (
	"container/heap"
	"slices"

	"github.com/okian/squads/internal/domain/model"
)

// Greedy fills squads one pick at a time. Each pick goes to the open squad
// with the lowest running total in whichever skill is lowest overall, and that
// squad receives the best remaining player in that skill.
//
// Ties on the total are broken by skill order (model.Skills), then by the
// lowest squad number. Squads are returned in the order they fill up.
type Greedy struct{}

// Name implements Strategy.
func (Greedy) Name() string { return GreedyName }

// openSquad is a squad still accepting players.
type openSquad struct {
	squad  model.Squad
	totals model.Profile
}

// Assign implements Strategy.
func (Greedy) Assign(pool *model.Pool, squadCount, squadSize int) ([]model.Squad, error) {
	players := pool.Players()
	taken := make([]bool, len(players))

	views := make([]*skillHeap, len(model.Skills))
	for _, s := range model.Skills {
		views[s] = newSkillHeap(players, s)
	}

	// open stays ordered by squad number; closing only deletes entries.
	open := make([]*openSquad, squadCount)
	for i := range open {
		open[i] = &openSquad{squad: model.Squad{Number: i + 1, Players: make([]model.Player, 0, squadSize)}}
	}

	closed := make([]model.Squad, 0, squadCount)
	picked := make(map[string]struct{}, squadCount*squadSize)
	for len(open) > 0 {
		at, skill := neediest(open)
		target := open[at]

		idx := views[skill].popBest(taken)
		taken[idx] = true
		p := players[idx]
		picked[p.ID] = struct{}{}

		target.squad.Players = append(target.squad.Players, p)
		target.totals = target.totals.Add(p.Skills)
		if target.squad.Len() == squadSize {
			closed = append(closed, target.squad)
			open = slices.Delete(open, at, at+1)
		}
	}

	pool.RemoveFunc(func(p model.Player) bool {
		_, ok := picked[p.ID]
		return ok
	})
	return closed, nil
}

// neediest returns the position in open and the skill of the lowest running
// total. For each skill the first squad holding the minimum wins, and across
// skills a strictly lower total is required to displace an earlier skill.
func neediest(open []*openSquad) (int, model.Skill) {
	bestAt, bestSkill, bestTotal := -1, model.Skills[0], 0
	for _, s := range model.Skills {
		at := 0
		for i := 1; i < len(open); i++ {
			if open[i].totals[s] < open[at].totals[s] {
				at = i
			}
		}
		if bestAt < 0 || open[at].totals[s] < bestTotal {
			bestAt, bestSkill, bestTotal = at, s, open[at].totals[s]
		}
	}
	return bestAt, bestSkill
}

// skillHeap is a max-heap of pool positions keyed on one skill. Equal ratings
// put the later pool position on top, matching the high end of a stable
// ascending sort. Entries for players taken through another skill are
// skipped lazily on pop.
type skillHeap struct {
	players []model.Player
	skill   model.Skill
	idx     []int
}

func newSkillHeap(players []model.Player, s model.Skill) *skillHeap {
	h := &skillHeap{players: players, skill: s, idx: make([]int, len(players))}
	for i := range h.idx {
		h.idx[i] = i
	}
	heap.Init(h)
	return h
}

func (h *skillHeap) Len() int { return len(h.idx) }

func (h *skillHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	ra, rb := h.players[a].Skills[h.skill], h.players[b].Skills[h.skill]
	if ra != rb {
		return ra > rb
	}
	return a > b
}

func (h *skillHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *skillHeap) Push(x any) { h.idx = append(h.idx, x.(int)) }

func (h *skillHeap) Pop() any {
	last := h.idx[len(h.idx)-1]
	h.idx = h.idx[:len(h.idx)-1]
	return last
}

// popBest removes and returns the best position not yet taken.
func (h *skillHeap) popBest(taken []bool) int {
	for {
		i := heap.Pop(h).(int)
		if !taken[i] {
			return i
		}
	}
}
