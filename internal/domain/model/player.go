package model

import "fmt"

// Player is a rated individual. Player values are comparable with ==.
type Player struct {
	ID     string
	Name   string
	Skills Profile
}

// NewPlayer validates and builds a Player.
func NewPlayer(id, name string, skills Profile) (Player, error) {
	if id == "" {
		return Player{}, ErrEmptyPlayerID
	}
	if err := skills.validate(); err != nil {
		return Player{}, fmt.Errorf("player %s: %w", id, err)
	}
	return Player{ID: id, Name: name, Skills: skills}, nil
}

// Rating returns the player's rating for s.
func (p Player) Rating(s Skill) int {
	return p.Skills[s]
}

// Equal reports whether id, name and every rating match.
func (p Player) Equal(o Player) bool {
	return p == o
}
