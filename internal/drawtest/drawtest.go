// Package drawtest builds a deterministic, fully rule-compliant league for
// tests: four pots of nine clubs, each club from a distinct country, and a
// 144-fixture schedule over eight matchdays that satisfies every hard and
// soft rule of the default tournament format. Tests derive invalid draws by
// perturbing this output.
package drawtest

import (
	"fmt"

	"github.com/albapepper/drawcert/internal/draw"
)

// Season is the label the generated draw is built for.
const Season = "2025-26"

// League returns the 36 clubs and their 144 fixtures. The schedule is
// fixed: matchdays 1-5 pair whole pots through shifted bipartite matchings,
// and matchdays 6-8 each combine one intra-pot matching per pot with cross
// fixtures between the clubs those matchings leave idle. Every club ends up
// with one home and one away fixture against every pot and never plays more
// than two consecutive home or away matches.
func League() ([]*draw.Club, []draw.Match) {
	pots := make([][]*draw.Club, 4)
	var all []*draw.Club
	for p := 0; p < 4; p++ {
		pots[p] = make([]*draw.Club, 9)
		for i := 0; i < 9; i++ {
			c, err := draw.NewClub(
				fmt.Sprintf("%c%d", 'A'+p, i),
				fmt.Sprintf("Club %c%d", 'A'+p, i),
				fmt.Sprintf("%c%cX", 'A'+p, 'A'+i),
				draw.Pot(p+1),
			)
			if err != nil {
				panic(err)
			}
			pots[p][i] = c
			all = append(all, c)
		}
	}

	var ms []draw.Match
	add := func(home, away *draw.Club, day int) {
		m, err := draw.NewMatch(home, away, day, 8)
		if err != nil {
			panic(err)
		}
		ms = append(ms, m)
	}

	a, b, c, d := pots[0], pots[1], pots[2], pots[3]
	for i := 0; i < 9; i++ {
		j := (i + 1) % 9
		add(a[i], b[i], 1)
		add(c[i], d[i], 1)
		add(b[j], a[i], 2)
		add(d[j], c[i], 2)
		add(a[i], c[i], 3)
		add(b[i], d[i], 3)
		add(c[j], a[i], 4)
		add(d[j], b[i], 4)
		add(a[i], d[i], 5)
		add(b[i], c[i], 5)
	}

	intraDay := map[int]int{0: 6, 1: 7, 2: 8}
	for _, pot := range [][]*draw.Club{a, b, c, d} {
		for i := 0; i < 9; i++ {
			add(pot[i], pot[(i+1)%9], intraDay[i%3])
		}
	}

	crossDay := map[int]int{2: 6, 0: 7, 1: 8}
	for i := 0; i < 9; i++ {
		day := crossDay[i%3]
		add(d[(i+3)%9], a[i], day)
		add(c[(i+3)%9], b[i], day)
	}

	return all, ms
}

// LeagueDraw assembles League's output into a draw.
func LeagueDraw() *draw.Draw {
	clubs, matches := League()
	d := draw.New(Season, clubs...)
	if err := d.AddMatches(matches); err != nil {
		panic(err)
	}
	return d
}
