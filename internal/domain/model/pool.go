package model

import (
	"fmt"
	"slices"
	"strings"
)

// Pool is an ordered collection of players with unique ids. Insertion order
// is the tie-break basis for sorting and balancing, so it is preserved by
// every operation. A Pool is not safe for concurrent use.
type Pool struct {
	players []Player
	ids     map[string]struct{}
}

// NewPool builds a pool from players in the given order.
func NewPool(players ...Player) (*Pool, error) {
	p := &Pool{
		players: make([]Player, 0, len(players)),
		ids:     make(map[string]struct{}, len(players)),
	}
	for _, pl := range players {
		if err := p.Add(pl); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add appends a player to the end of the pool.
func (p *Pool) Add(pl Player) error {
	if pl.ID == "" {
		return ErrEmptyPlayerID
	}
	if p.ids == nil {
		p.ids = make(map[string]struct{})
	}
	if _, ok := p.ids[pl.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, pl.ID)
	}
	p.ids[pl.ID] = struct{}{}
	p.players = append(p.players, pl)
	return nil
}

// Len returns the number of players in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.players)
}

// Contains reports whether a player with id is in the pool.
func (p *Pool) Contains(id string) bool {
	if p == nil {
		return false
	}
	_, ok := p.ids[id]
	return ok
}

// Get returns the player with id.
func (p *Pool) Get(id string) (Player, error) {
	if p.Contains(id) {
		for _, pl := range p.players {
			if pl.ID == id {
				return pl, nil
			}
		}
	}
	return Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

// At returns the player at position i in pool order.
func (p *Pool) At(i int) Player {
	return p.players[i]
}

// Players returns a copy of the players in pool order.
func (p *Pool) Players() []Player {
	if p == nil {
		return nil
	}
	return slices.Clone(p.players)
}

// Remove deletes the player with id, keeping the order of the rest.
func (p *Pool) Remove(id string) (Player, error) {
	if !p.Contains(id) {
		return Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	i := slices.IndexFunc(p.players, func(pl Player) bool { return pl.ID == id })
	pl := p.players[i]
	p.players = slices.Delete(p.players, i, i+1)
	delete(p.ids, id)
	return pl, nil
}

// RemoveFunc deletes every player for which drop returns true in one pass and
// returns how many were removed.
func (p *Pool) RemoveFunc(drop func(Player) bool) int {
	if p == nil {
		return 0
	}
	before := len(p.players)
	p.players = slices.DeleteFunc(p.players, func(pl Player) bool {
		if drop(pl) {
			delete(p.ids, pl.ID)
			return true
		}
		return false
	})
	return before - len(p.players)
}

// Clear removes every player.
func (p *Pool) Clear() {
	p.players = p.players[:0]
	clear(p.ids)
}

// Clone returns an independent copy of the pool.
func (p *Pool) Clone() *Pool {
	c := &Pool{
		players: slices.Clone(p.players),
		ids:     make(map[string]struct{}, len(p.players)),
	}
	for _, pl := range c.players {
		c.ids[pl.ID] = struct{}{}
	}
	return c
}

// Sorted returns the players ordered ascending by skill. Equal ratings keep
// pool order.
func (p *Pool) Sorted(s Skill) []Player {
	out := p.Players()
	slices.SortStableFunc(out, func(a, b Player) int {
		return a.Skills[s] - b.Skills[s]
	})
	return out
}

// SortedByName returns the players ordered by name. Equal names keep pool order.
func (p *Pool) SortedByName() []Player {
	out := p.Players()
	slices.SortStableFunc(out, func(a, b Player) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Equal reports whether both pools hold the same players in the same order.
func (p *Pool) Equal(o *Pool) bool {
	return slices.Equal(p.Players(), o.Players())
}
