package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/tournament"
)

// defaultSeason labels a draw whose document does not carry one.
const defaultSeason = "2025-26"

type matchRow struct {
	HomeID   string `json:"home_id"`
	AwayID   string `json:"away_id"`
	Matchday int    `json:"matchday"`
}

type drawDoc struct {
	Season  string     `json:"season"`
	Matches []matchRow `json:"matches"`
}

// ParseDraw decodes a draw document and resolves its fixtures against the
// known clubs. Unknown club ids, malformed fixtures, and duplicate fixtures
// are import errors carrying the offending row number; rule compliance is
// left entirely to the validator.
func ParseDraw(data []byte, clubs []*draw.Club, f tournament.Format) (*draw.Draw, error) {
	var doc drawDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding draw: %w", err)
	}
	if len(doc.Matches) == 0 {
		return nil, fmt.Errorf("no matches found in input")
	}
	season := strings.TrimSpace(doc.Season)
	if season == "" {
		season = defaultSeason
	}

	idx := Index(clubs)
	d := draw.New(season, clubs...)
	for i, row := range doc.Matches {
		home, ok := idx[strings.TrimSpace(row.HomeID)]
		if !ok {
			return nil, fmt.Errorf("match %d: unknown home club %q", i+1, row.HomeID)
		}
		away, ok := idx[strings.TrimSpace(row.AwayID)]
		if !ok {
			return nil, fmt.Errorf("match %d: unknown away club %q", i+1, row.AwayID)
		}
		m, err := draw.NewMatch(home, away, row.Matchday, f.Matchdays)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", i+1, err)
		}
		if err := d.AddMatch(m); err != nil {
			return nil, fmt.Errorf("match %d: %w", i+1, err)
		}
	}
	return d, nil
}

// Draw loads and parses a draw file.
func Draw(path string, clubs []*draw.Club, f tournament.Format) (*draw.Draw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draw file: %w", err)
	}
	d, err := ParseDraw(data, clubs, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
