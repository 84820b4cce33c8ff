package model

import "slices"

// Squad is a numbered group of players in assignment order.
type Squad struct {
	Number  int
	Players []Player
}

// Len returns the number of players in the squad.
func (s Squad) Len() int {
	return len(s.Players)
}

// Equal reports whether both squads share a number and the same ordered players.
func (s Squad) Equal(o Squad) bool {
	return s.Number == o.Number && slices.Equal(s.Players, o.Players)
}
