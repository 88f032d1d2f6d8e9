package rules

import (
	"cmp"
	"slices"

	"github.com/albapepper/drawcert/internal/draw"
)

func (s *Set) checkTotalMatches(d *draw.Draw) bool {
	return d.MatchCount() == s.format.ExpectedTotalMatches()
}

func (s *Set) checkMatchesPerClub(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		if len(d.MatchesFor(c)) != s.format.MatchesPerClub {
			return false
		}
	}
	return true
}

func (s *Set) checkHomeAwayBalance(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		if len(d.HomeMatchesFor(c)) != s.format.HomeMatchesPerClub {
			return false
		}
		if len(d.AwayMatchesFor(c)) != s.format.AwayMatchesPerClub {
			return false
		}
	}
	return true
}

func (s *Set) checkOpponentsPerPot(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		perPot := make(map[draw.Pot]int)
		for _, o := range d.OpponentsFor(c) {
			perPot[o.Pot]++
		}
		// A missing pot stays at zero and is compared like any other.
		for _, p := range draw.Pots() {
			if perPot[p] != s.format.OpponentsPerPot[p] {
				return false
			}
		}
	}
	return true
}

func (s *Set) checkPotHomeAwayDistribution(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		home := make(map[draw.Pot]int)
		away := make(map[draw.Pot]int)
		for _, m := range d.HomeMatchesFor(c) {
			home[m.Away.Pot]++
		}
		for _, m := range d.AwayMatchesFor(c) {
			away[m.Home.Pot]++
		}
		for _, p := range draw.Pots() {
			split := s.format.PotHomeAway[p]
			if home[p] != split.Home || away[p] != split.Away {
				return false
			}
		}
	}
	return true
}

func (s *Set) checkNoSameCountryOpponents(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		if len(d.CountryClashesFor(c)) > s.format.MaxSameCountryOpponents {
			return false
		}
	}
	return true
}

func (s *Set) checkMaxOpponentsPerForeignCountry(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		perCountry := make(map[string]int)
		for _, o := range d.OpponentsFor(c) {
			// Same-country opponents are counted by no_same_country_opponents,
			// never against the foreign-country ceiling.
			if o.Country == c.Country {
				continue
			}
			perCountry[o.Country]++
		}
		for _, n := range perCountry {
			if n > s.format.MaxOpponentsPerForeignCountry {
				return false
			}
		}
	}
	return true
}

func (s *Set) checkNoConsecutiveMatches(d *draw.Draw) bool {
	for _, c := range d.Clubs() {
		ms := d.MatchesFor(c)
		slices.SortStableFunc(ms, func(a, b draw.Match) int {
			return cmp.Compare(a.Matchday, b.Matchday)
		})
		consecutiveHome, consecutiveAway := 0, 0
		for _, m := range ms {
			if m.Home.ID == c.ID {
				consecutiveHome++
				consecutiveAway = 0
				if consecutiveHome > s.format.MaxConsecutiveHome {
					return false
				}
			} else {
				consecutiveAway++
				consecutiveHome = 0
				if consecutiveAway > s.format.MaxConsecutiveAway {
					return false
				}
			}
		}
	}
	return true
}
