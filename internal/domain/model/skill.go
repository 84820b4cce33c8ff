// Package model contains domain models passed between layers.
package model

import "fmt"

// Skill is one rated dimension of a player.
type Skill int

// Known skills. Declaration order is the iteration order of Skills.
const (
	Skating Skill = iota
	Shooting
	Checking

	numSkills = iota
)

// Skills lists every skill in tie-break order. Balancing strategies walk this
// slice directly; earlier entries win ties.
var Skills = [numSkills]Skill{Skating, Shooting, Checking}

var skillNames = [numSkills]string{"Skating", "Shooting", "Checking"}

// String returns the canonical skill name used in roster documents.
func (s Skill) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillNames[s]
}

// Valid reports whether s is one of the known skills.
func (s Skill) Valid() bool {
	return s >= 0 && int(s) < numSkills
}

// ParseSkill resolves a canonical skill name. Matching is case-sensitive.
func ParseSkill(name string) (Skill, error) {
	for _, s := range Skills {
		if skillNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
}

// Profile holds one rating per skill, indexed by Skill.
type Profile [numSkills]int

// NewProfile builds a profile from ratings given in Skills order.
func NewProfile(skating, shooting, checking int) Profile {
	return Profile{Skating: skating, Shooting: shooting, Checking: checking}
}

// Rating returns the rating for s.
func (p Profile) Rating(s Skill) int {
	return p[s]
}

// Peak returns the highest rating across all skills.
func (p Profile) Peak() int {
	peak := p[Skills[0]]
	for _, s := range Skills[1:] {
		if p[s] > peak {
			peak = p[s]
		}
	}
	return peak
}

// Add returns the element-wise sum of p and o.
func (p Profile) Add(o Profile) Profile {
	for _, s := range Skills {
		p[s] += o[s]
	}
	return p
}

func (p Profile) validate() error {
	for _, s := range Skills {
		if p[s] < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeRating, s, p[s])
		}
	}
	return nil
}
