package draw

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDuplicateMatch reports an insertion that repeats an existing match
// identity.
var ErrDuplicateMatch = errors.New("duplicate match")

// Draw is a candidate fixture list for one season. It owns its match
// collection exclusively: fixtures enter through AddMatch only and every
// query recomputes from current state. Insertion never checks rule
// compliance; that is the validator's job.
type Draw struct {
	season  string
	matches []Match
	index   map[MatchKey]struct{}
	clubs   map[string]*Club
}

// New builds an empty draw. Clubs passed here are registered as participants
// before any of their fixtures exist, which keeps a fixture-less club
// visible to per-club checks instead of silently absent.
func New(season string, clubs ...*Club) *Draw {
	d := &Draw{
		season: season,
		index:  make(map[MatchKey]struct{}),
		clubs:  make(map[string]*Club),
	}
	for _, c := range clubs {
		if c != nil {
			d.clubs[c.ID] = c
		}
	}
	return d
}

// Season returns the season label, e.g. "2025-26".
func (d *Draw) Season() string { return d.season }

// AddMatch appends a fixture and registers both clubs as participants.
// Inserting a match whose identity is already present fails with
// ErrDuplicateMatch and leaves the draw unchanged.
func (d *Draw) AddMatch(m Match) error {
	key := m.Key()
	if _, ok := d.index[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMatch, m)
	}
	d.index[key] = struct{}{}
	d.matches = append(d.matches, m)
	d.clubs[m.Home.ID] = m.Home
	d.clubs[m.Away.ID] = m.Away
	return nil
}

// AddMatches appends fixtures in order, stopping at the first failure.
func (d *Draw) AddMatches(ms []Match) error {
	for _, m := range ms {
		if err := d.AddMatch(m); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// MatchCount returns the number of fixtures in the draw.
func (d *Draw) MatchCount() int { return len(d.matches) }

// Matches returns the fixtures in insertion order.
func (d *Draw) Matches() []Match {
	return slices.Clone(d.matches)
}

// Clubs returns every participant sorted by ID.
func (d *Draw) Clubs() []*Club {
	out := make([]*Club, 0, len(d.clubs))
	for _, c := range d.clubs {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Club) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// MatchesFor returns the fixtures c takes part in, in insertion order.
func (d *Draw) MatchesFor(c *Club) []Match {
	var out []Match
	for _, m := range d.matches {
		if m.Involves(c) {
			out = append(out, m)
		}
	}
	return out
}

// HomeMatchesFor returns the fixtures c hosts.
func (d *Draw) HomeMatchesFor(c *Club) []Match {
	var out []Match
	for _, m := range d.matches {
		if c != nil && m.Home.ID == c.ID {
			out = append(out, m)
		}
	}
	return out
}

// AwayMatchesFor returns the fixtures c plays away.
func (d *Draw) AwayMatchesFor(c *Club) []Match {
	var out []Match
	for _, m := range d.matches {
		if c != nil && m.Away.ID == c.ID {
			out = append(out, m)
		}
	}
	return out
}

// MatchesByMatchday returns the fixtures scheduled on one matchday, in
// insertion order.
func (d *Draw) MatchesByMatchday(matchday int) []Match {
	var out []Match
	for _, m := range d.matches {
		if m.Matchday == matchday {
			out = append(out, m)
		}
	}
	return out
}

// OpponentsFor returns the distinct clubs c plays against, sorted by ID.
func (d *Draw) OpponentsFor(c *Club) []*Club {
	seen := make(map[string]*Club)
	for _, m := range d.matches {
		if o := m.OpponentOf(c); o != nil {
			seen[o.ID] = o
		}
	}
	out := make([]*Club, 0, len(seen))
	for _, o := range seen {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b *Club) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// ClubsByCountry groups participants by country code; each group is sorted
// by club ID.
func (d *Draw) ClubsByCountry() map[string][]*Club {
	out := make(map[string][]*Club)
	for _, c := range d.Clubs() {
		out[c.Country] = append(out[c.Country], c)
	}
	return out
}

// ClubsByPot groups participants by seeding pot; each group is sorted by
// club ID.
func (d *Draw) ClubsByPot() map[Pot][]*Club {
	out := make(map[Pot][]*Club)
	for _, c := range d.Clubs() {
		out[c.Pot] = append(out[c.Pot], c)
	}
	return out
}

// Clash pairs a same-country opponent with the number of fixtures the two
// clubs share.
type Clash struct {
	Opponent *Club
	Matches  int
}

// CountryClashesFor returns c's same-country opponents in ID order, with
// the number of fixtures against each.
func (d *Draw) CountryClashesFor(c *Club) []Clash {
	if c == nil {
		return nil
	}
	var out []Clash
	for _, o := range d.OpponentsFor(c) {
		if o.Country != c.Country {
			continue
		}
		n := 0
		for _, m := range d.matches {
			if m.Involves(c) && m.Involves(o) {
				n++
			}
		}
		out = append(out, Clash{Opponent: o, Matches: n})
	}
	return out
}

// HasCountryClash reports whether a and b share a country and meet at least
// once in the draw.
func (d *Draw) HasCountryClash(a, b *Club) bool {
	if a == nil || b == nil || a.ID == b.ID || a.Country != b.Country {
		return false
	}
	for _, m := range d.matches {
		if m.Involves(a) && m.Involves(b) {
			return true
		}
	}
	return false
}
