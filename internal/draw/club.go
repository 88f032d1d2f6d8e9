// Package draw defines the entities a league-phase fixture list is built
// from: seeding pots, clubs, directed home/away matches, and the Draw
// aggregate with its query surface. The package holds no configuration and
// performs no I/O; rule compliance is judged elsewhere.
package draw

import (
	"fmt"
	"strings"
)

// Pot is a seeding tier. A league phase draws from exactly four pots.
type Pot int

const (
	Pot1 Pot = iota + 1
	Pot2
	Pot3
	Pot4
)

// Pots returns the four tiers in ascending order. Per-pot iteration goes
// through this slice so reported output stays deterministic.
func Pots() []Pot {
	return []Pot{Pot1, Pot2, Pot3, Pot4}
}

// PotFromInt converts a raw pot number, rejecting anything outside 1..4.
func PotFromInt(v int) (Pot, error) {
	p := Pot(v)
	if !p.Valid() {
		return 0, fmt.Errorf("pot must be between 1 and 4: got %d", v)
	}
	return p, nil
}

// Valid reports whether p is one of the four tiers.
func (p Pot) Valid() bool {
	return p >= Pot1 && p <= Pot4
}

// Club is a draw participant. Instances are shared by reference and treated
// as immutable once constructed; identity is the club ID.
type Club struct {
	ID      string
	Name    string
	Country string // ISO 3166-1 alpha-3, uppercase
	Pot     Pot
}

// NewClub validates and builds a club. The country code must be exactly
// three uppercase ASCII letters.
func NewClub(id, name, country string, pot Pot) (*Club, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("club id must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("club %s: name must not be empty", id)
	}
	if !validCountry(country) {
		return nil, fmt.Errorf("club %s: country must be a 3-letter uppercase code: got %q", id, country)
	}
	if !pot.Valid() {
		return nil, fmt.Errorf("club %s: pot must be between 1 and 4: got %d", id, int(pot))
	}
	return &Club{ID: id, Name: name, Country: country, Pot: pot}, nil
}

func validCountry(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// SameCountry reports whether both clubs are registered in the same country.
func (c *Club) SameCountry(o *Club) bool {
	return o != nil && c.Country == o.Country
}

func (c *Club) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}
