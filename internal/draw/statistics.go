package draw

// Statistics is a JSON-ready snapshot of a draw: season, participant and
// fixture counts, distribution over pots, countries and matchdays, and one
// detail block per club.
type Statistics struct {
	Season             string               `json:"season"`
	ClubCount          int                  `json:"club_count"`
	MatchCount         int                  `json:"match_count"`
	ClubsPerPot        map[Pot]int          `json:"clubs_per_pot"`
	ClubsPerCountry    map[string]int       `json:"clubs_per_country"`
	MatchesPerMatchday map[int]int          `json:"matches_per_matchday"`
	Clubs              map[string]ClubStats `json:"clubs"`
}

// ClubStats summarizes one club's slice of the draw.
type ClubStats struct {
	Name           string       `json:"name"`
	Country        string       `json:"country"`
	Pot            Pot          `json:"pot"`
	Matches        int          `json:"matches"`
	Home           int          `json:"home"`
	Away           int          `json:"away"`
	Opponents      []string     `json:"opponents"`
	CountryClashes []ClashStats `json:"country_clashes,omitempty"`
}

// ClashStats is the serializable form of a same-country clash.
type ClashStats struct {
	Opponent string `json:"opponent"`
	Matches  int    `json:"matches"`
}

// Statistics computes the snapshot for the current draw state.
func (d *Draw) Statistics() Statistics {
	stats := Statistics{
		Season:             d.season,
		ClubCount:          len(d.clubs),
		MatchCount:         len(d.matches),
		ClubsPerPot:        make(map[Pot]int),
		ClubsPerCountry:    make(map[string]int),
		MatchesPerMatchday: make(map[int]int),
		Clubs:              make(map[string]ClubStats),
	}
	for _, m := range d.matches {
		stats.MatchesPerMatchday[m.Matchday]++
	}
	for _, c := range d.Clubs() {
		stats.ClubsPerPot[c.Pot]++
		stats.ClubsPerCountry[c.Country]++
		cs := ClubStats{
			Name:    c.Name,
			Country: c.Country,
			Pot:     c.Pot,
			Matches: len(d.MatchesFor(c)),
			Home:    len(d.HomeMatchesFor(c)),
			Away:    len(d.AwayMatchesFor(c)),
		}
		for _, o := range d.OpponentsFor(c) {
			cs.Opponents = append(cs.Opponents, o.ID)
		}
		for _, clash := range d.CountryClashesFor(c) {
			cs.CountryClashes = append(cs.CountryClashes, ClashStats{
				Opponent: clash.Opponent.ID,
				Matches:  clash.Matches,
			})
		}
		stats.Clubs[c.ID] = cs
	}
	return stats
}
