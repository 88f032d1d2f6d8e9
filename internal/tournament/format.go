// Package tournament describes the competition format a draw is judged
// against: club and matchday counts, per-pot opponent quotas, country
// ceilings, and streak limits. A Format is plain data supplied from the
// outside; the rule engine consumes it as given and never re-validates it.
package tournament

import (
	"errors"
	"fmt"

	"github.com/albapepper/drawcert/internal/draw"
)

// HomeAway is the home/away split of the fixtures a club plays against one
// pot.
type HomeAway struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Format is the complete value set for one league phase. Treat a Format as
// read-only once constructed or loaded.
type Format struct {
	TotalClubs         int `json:"total_clubs"`
	MatchesPerClub     int `json:"matches_per_club"`
	Matchdays          int `json:"matchdays"`
	HomeMatchesPerClub int `json:"home_matches_per_club"`
	AwayMatchesPerClub int `json:"away_matches_per_club"`

	ClubsPerPot     map[draw.Pot]int      `json:"clubs_per_pot"`
	OpponentsPerPot map[draw.Pot]int      `json:"opponents_per_pot"`
	PotHomeAway     map[draw.Pot]HomeAway `json:"pot_home_away"`

	MaxSameCountryOpponents       int `json:"max_same_country_opponents"`
	MaxOpponentsPerForeignCountry int `json:"max_opponents_per_foreign_country"`
	MaxConsecutiveHome            int `json:"max_consecutive_home"`
	MaxConsecutiveAway            int `json:"max_consecutive_away"`
}

// Default returns the 36-club league-phase format: four pots of nine, eight
// matchdays, four home and four away fixtures per club, two opponents per
// pot split one home / one away, no same-country opponents, at most two
// opponents from any other single country, and at most two consecutive home
// or away fixtures.
func Default() Format {
	return Format{
		TotalClubs:         36,
		MatchesPerClub:     8,
		Matchdays:          8,
		HomeMatchesPerClub: 4,
		AwayMatchesPerClub: 4,
		ClubsPerPot: map[draw.Pot]int{
			draw.Pot1: 9, draw.Pot2: 9, draw.Pot3: 9, draw.Pot4: 9,
		},
		OpponentsPerPot: map[draw.Pot]int{
			draw.Pot1: 2, draw.Pot2: 2, draw.Pot3: 2, draw.Pot4: 2,
		},
		PotHomeAway: map[draw.Pot]HomeAway{
			draw.Pot1: {Home: 1, Away: 1},
			draw.Pot2: {Home: 1, Away: 1},
			draw.Pot3: {Home: 1, Away: 1},
			draw.Pot4: {Home: 1, Away: 1},
		},
		MaxSameCountryOpponents:       0,
		MaxOpponentsPerForeignCountry: 2,
		MaxConsecutiveHome:            2,
		MaxConsecutiveAway:            2,
	}
}

// ExpectedTotalMatches returns the fixture count a complete draw must have:
// every club plays MatchesPerClub and each fixture covers two clubs.
func (f Format) ExpectedTotalMatches() int {
	return f.TotalClubs * f.MatchesPerClub / 2
}

// Validate cross-checks the format values against each other. All detected
// inconsistencies are reported, joined into one error.
func (f Format) Validate() error {
	var errs []error

	if f.TotalClubs <= 0 {
		errs = append(errs, fmt.Errorf("total clubs must be positive: got %d", f.TotalClubs))
	}
	if f.MatchesPerClub <= 0 {
		errs = append(errs, fmt.Errorf("matches per club must be positive: got %d", f.MatchesPerClub))
	}
	if f.Matchdays != f.MatchesPerClub {
		errs = append(errs, fmt.Errorf("matchdays (%d) must equal matches per club (%d): every club plays exactly once per matchday", f.Matchdays, f.MatchesPerClub))
	}
	if f.TotalClubs*f.MatchesPerClub%2 != 0 {
		errs = append(errs, fmt.Errorf("total clubs x matches per club must be even: got %d x %d", f.TotalClubs, f.MatchesPerClub))
	}
	if f.HomeMatchesPerClub+f.AwayMatchesPerClub != f.MatchesPerClub {
		errs = append(errs, fmt.Errorf("home (%d) + away (%d) matches must equal matches per club (%d)", f.HomeMatchesPerClub, f.AwayMatchesPerClub, f.MatchesPerClub))
	}

	clubSum, opponentSum := 0, 0
	for _, p := range draw.Pots() {
		clubSum += f.ClubsPerPot[p]
		opponentSum += f.OpponentsPerPot[p]
		if split := f.PotHomeAway[p]; split.Home+split.Away != f.OpponentsPerPot[p] {
			errs = append(errs, fmt.Errorf("pot %d split %d/%d must sum to its opponent quota %d", p, split.Home, split.Away, f.OpponentsPerPot[p]))
		}
	}
	if clubSum != f.TotalClubs {
		errs = append(errs, fmt.Errorf("clubs per pot sum to %d, want %d", clubSum, f.TotalClubs))
	}
	if opponentSum != f.MatchesPerClub {
		errs = append(errs, fmt.Errorf("opponents per pot sum to %d, want %d", opponentSum, f.MatchesPerClub))
	}

	if f.MaxSameCountryOpponents < 0 {
		errs = append(errs, fmt.Errorf("max same-country opponents must not be negative: got %d", f.MaxSameCountryOpponents))
	}
	if f.MaxOpponentsPerForeignCountry < 0 {
		errs = append(errs, fmt.Errorf("max opponents per foreign country must not be negative: got %d", f.MaxOpponentsPerForeignCountry))
	}
	if f.MaxConsecutiveHome < 1 || f.MaxConsecutiveAway < 1 {
		errs = append(errs, fmt.Errorf("consecutive home/away limits must be at least 1: got %d/%d", f.MaxConsecutiveHome, f.MaxConsecutiveAway))
	}

	return errors.Join(errs...)
}
