// Package roster reads and writes player roster documents and turns them
// into player pools for the balancing engine.
//
// A roster document looks like:
//
//	{"players": [{"_id": "99", "firstName": "Wayne", "lastName": "Gretzky",
//	  "skills": [{"type": "Skating", "rating": 99}, ...]}]}
//
// Every player must carry exactly one rating per known skill.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/okian/squads/internal/domain/model"
)

// Format names a roster encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the on-disk roster shape.
type Document struct {
	Players []Record `json:"players" yaml:"players"`
}

// Record is one player entry of a roster document.
type Record struct {
	ID        string        `json:"_id" yaml:"_id"`
	FirstName string        `json:"firstName" yaml:"firstName"`
	LastName  string        `json:"lastName" yaml:"lastName"`
	Skills    []SkillRecord `json:"skills" yaml:"skills"`
}

// SkillRecord is one rating of a Record.
type SkillRecord struct {
	Type   string `json:"type" yaml:"type"`
	Rating int    `json:"rating" yaml:"rating"`
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode reads a roster document and converts it into players in document
// order.
func Decode(r io.Reader, format Format) ([]model.Player, error) {
	var doc Document
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidRoster, err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidRoster, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc.ToPlayers()
}

// ToPlayers converts every record, failing on the first invalid one.
func (d Document) ToPlayers() ([]model.Player, error) {
	out := make([]model.Player, 0, len(d.Players))
	for i, rec := range d.Players {
		p, err := rec.Player()
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %w", ErrInvalidRoster, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Player converts the record. The display name joins first and last name.
func (r Record) Player() (model.Player, error) {
	var (
		profile model.Profile
		seen    [len(model.Skills)]bool
	)
	for _, sr := range r.Skills {
		s, err := model.ParseSkill(sr.Type)
		if err != nil {
			return model.Player{}, err
		}
		if seen[s] {
			return model.Player{}, fmt.Errorf("skill %s rated twice", s)
		}
		seen[s] = true
		profile[s] = sr.Rating
	}
	for _, s := range model.Skills {
		if !seen[s] {
			return model.Player{}, fmt.Errorf("missing %s rating", s)
		}
	}
	return model.NewPlayer(r.ID, strings.TrimSpace(r.FirstName+" "+r.LastName), profile)
}

// NewPool decodes a roster straight into a pool.
func NewPool(r io.Reader, format Format) (*model.Pool, error) {
	players, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	pool, err := model.NewPool(players...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	return pool, nil
}

// LoadFile reads the roster at path into a pool.
func LoadFile(path string) (*model.Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()
	return NewPool(f, FormatFromPath(path))
}

// FromPlayers builds a document from players. Names are split on the first
// space into first and last name.
func FromPlayers(players []model.Player) Document {
	doc := Document{Players: make([]Record, 0, len(players))}
	for _, p := range players {
		first, last, _ := strings.Cut(p.Name, " ")
		rec := Record{ID: p.ID, FirstName: first, LastName: last, Skills: make([]SkillRecord, 0, len(model.Skills))}
		for _, s := range model.Skills {
			rec.Skills = append(rec.Skills, SkillRecord{Type: s.String(), Rating: p.Skills[s]})
		}
		doc.Players = append(doc.Players, rec)
	}
	return doc
}

// Encode writes players as a roster document.
func Encode(w io.Writer, players []model.Player, format Format) error {
	doc := FromPlayers(players)
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
