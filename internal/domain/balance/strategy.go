package balance

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/okian/squads/internal/domain/model"
)

// Strategy names accepted by Lookup.
const (
	GreedyName     = "greedy"
	TournamentName = "tournament"
)

// Strategy fills squadCount squads of squadSize players from pool.
//
// Implementations remove every assigned player from pool and leave the rest
// in their original relative order. The caller guarantees
// 1 <= squadCount*squadSize <= pool.Len().
type Strategy interface {
	Name() string
	Assign(pool *model.Pool, squadCount, squadSize int) ([]model.Squad, error)
}

var strategies = map[string]Strategy{
	GreedyName:     Greedy{},
	TournamentName: Tournament{},
}

// Lookup resolves a strategy by name.
func Lookup(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	out := lo.Keys(strategies)
	sort.Strings(out)
	return out
}
