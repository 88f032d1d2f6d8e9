package draw

import "fmt"

// Venue distinguishes the two sides of a fixture.
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// Match is one fixture: a home club hosting an away club on a matchday.
// Identity is the directed triple (home ID, away ID, matchday), so swapping
// the clubs yields a different match.
type Match struct {
	Home     *Club
	Away     *Club
	Matchday int
}

// MatchKey is the comparable identity of a match.
type MatchKey struct {
	HomeID   string
	AwayID   string
	Matchday int
}

// NewMatch validates and builds a fixture. matchdays is the calendar length
// the matchday must fall into.
func NewMatch(home, away *Club, matchday, matchdays int) (Match, error) {
	if home == nil || away == nil {
		return Match{}, fmt.Errorf("match requires a home and an away club")
	}
	if home.ID == away.ID {
		return Match{}, fmt.Errorf("club %s cannot play against itself", home.ID)
	}
	if matchday < 1 || matchday > matchdays {
		return Match{}, fmt.Errorf("matchday must be between 1 and %d: got %d", matchdays, matchday)
	}
	return Match{Home: home, Away: away, Matchday: matchday}, nil
}

// Key returns the directed match identity.
func (m Match) Key() MatchKey {
	return MatchKey{HomeID: m.Home.ID, AwayID: m.Away.ID, Matchday: m.Matchday}
}

// Reverse returns the mirrored fixture on the same matchday with home and
// away swapped. It is a derived value, never part of the draw itself.
func (m Match) Reverse() Match {
	return Match{Home: m.Away, Away: m.Home, Matchday: m.Matchday}
}

// Involves reports whether c plays in this match.
func (m Match) Involves(c *Club) bool {
	return c != nil && (m.Home.ID == c.ID || m.Away.ID == c.ID)
}

// OpponentOf returns the club c plays against, or nil when c is not part of
// the match.
func (m Match) OpponentOf(c *Club) *Club {
	switch {
	case c == nil:
		return nil
	case m.Home.ID == c.ID:
		return m.Away
	case m.Away.ID == c.ID:
		return m.Home
	default:
		return nil
	}
}

// VenueFor returns the side c plays this match at.
func (m Match) VenueFor(c *Club) (Venue, error) {
	switch {
	case c != nil && m.Home.ID == c.ID:
		return VenueHome, nil
	case c != nil && m.Away.ID == c.ID:
		return VenueAway, nil
	default:
		return "", fmt.Errorf("club is not part of match %s", m)
	}
}

func (m Match) String() string {
	return fmt.Sprintf("%s v %s (matchday %d)", m.Home.ID, m.Away.ID, m.Matchday)
}
