// Package loader imports clubs, draws, and tournament formats from JSON
// files or raw payloads. It is the boundary between wire data and the
// entity model: rows are normalized and built through the model's
// validating constructors, so nothing malformed reaches the core.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/albapepper/drawcert/internal/draw"
)

type clubRow struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Country string          `json:"country"`
	Pot     json.RawMessage `json:"pot"`
}

// pot accepts both a JSON number and a numeric string.
func (r clubRow) pot() (draw.Pot, error) {
	var n int
	if err := json.Unmarshal(r.Pot, &n); err == nil {
		return draw.PotFromInt(n)
	}
	var s string
	if err := json.Unmarshal(r.Pot, &s); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("pot is not a number: %q", s)
		}
		return draw.PotFromInt(v)
	}
	return 0, fmt.Errorf("pot is missing or malformed")
}

// ParseClubs decodes a club list from raw JSON. Both a bare array and a
// {"clubs": [...]} document are accepted. Values are normalized before
// construction: whitespace trimmed, country uppercased. Duplicate IDs are
// rejected.
func ParseClubs(data []byte) ([]*draw.Club, error) {
	var rows []clubRow
	if err := json.Unmarshal(data, &rows); err != nil {
		var doc struct {
			Clubs []clubRow `json:"clubs"`
		}
		if err2 := json.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("decoding clubs: %w", err)
		}
		rows = doc.Clubs
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no clubs found in input")
	}

	clubs := make([]*draw.Club, 0, len(rows))
	seen := make(map[string]bool)
	for i, row := range rows {
		pot, err := row.pot()
		if err != nil {
			return nil, fmt.Errorf("club %d: %w", i+1, err)
		}
		c, err := draw.NewClub(
			strings.TrimSpace(row.ID),
			strings.TrimSpace(row.Name),
			strings.ToUpper(strings.TrimSpace(row.Country)),
			pot,
		)
		if err != nil {
			return nil, fmt.Errorf("club %d: %w", i+1, err)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("club %d: duplicate club id %s", i+1, c.ID)
		}
		seen[c.ID] = true
		clubs = append(clubs, c)
	}
	return clubs, nil
}

// Clubs loads and parses a club file.
func Clubs(path string) ([]*draw.Club, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading clubs file: %w", err)
	}
	clubs, err := ParseClubs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clubs, nil
}

// Index maps clubs by ID for fixture resolution.
func Index(clubs []*draw.Club) map[string]*draw.Club {
	idx := make(map[string]*draw.Club, len(clubs))
	for _, c := range clubs {
		idx[c.ID] = c
	}
	return idx
}
