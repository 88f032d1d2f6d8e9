package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/tournament"
)

func TestParseClubsBareList(t *testing.T) {
	data := []byte(`[
		{"id": "PSG", "name": "Paris Saint-Germain", "country": "FRA", "pot": 1},
		{"id": " RMA ", "name": "Real Madrid", "country": " esp ", "pot": "2"}
	]`)

	clubs, err := ParseClubs(data)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	assert.Equal(t, "PSG", clubs[0].ID)
	assert.Equal(t, draw.Pot1, clubs[0].Pot)

	// Whitespace is trimmed, countries uppercased, string pots accepted.
	assert.Equal(t, "RMA", clubs[1].ID)
	assert.Equal(t, "ESP", clubs[1].Country)
	assert.Equal(t, draw.Pot2, clubs[1].Pot)
}

func TestParseClubsWrappedDocument(t *testing.T) {
	data := []byte(`{"clubs": [{"id": "AJA", "name": "Ajax", "country": "NED", "pot": 3}]}`)

	clubs, err := ParseClubs(data)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "AJA", clubs[0].ID)
	assert.Equal(t, draw.Pot3, clubs[0].Pot)
}

func TestParseClubsErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", `{{`, "decoding clubs"},
		{"empty list", `[]`, "no clubs found"},
		{"empty document", `{"clubs": []}`, "no clubs found"},
		{"missing pot", `[{"id": "A", "name": "A", "country": "AAA"}]`, "pot is missing or malformed"},
		{"pot out of range", `[{"id": "A", "name": "A", "country": "AAA", "pot": 7}]`, "pot must be between 1 and 4"},
		{"pot not numeric", `[{"id": "A", "name": "A", "country": "AAA", "pot": "first"}]`, "pot is not a number"},
		{"bad country", `[{"id": "A", "name": "A", "country": "DE", "pot": 1}]`, "3-letter uppercase"},
		{"blank id", `[{"id": "  ", "name": "A", "country": "AAA", "pot": 1}]`, "club 1"},
		{
			"duplicate id",
			`[{"id": "A", "name": "One", "country": "AAA", "pot": 1},
			  {"id": "A", "name": "Two", "country": "BBB", "pot": 2}]`,
			"club 2: duplicate club id A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClubs([]byte(tt.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func testClubs(t *testing.T) []*draw.Club {
	t.Helper()
	clubs, err := ParseClubs([]byte(`[
		{"id": "PSG", "name": "Paris Saint-Germain", "country": "FRA", "pot": 1},
		{"id": "RMA", "name": "Real Madrid", "country": "ESP", "pot": 1},
		{"id": "AJA", "name": "Ajax", "country": "NED", "pot": 2}
	]`))
	require.NoError(t, err)
	return clubs
}

func TestParseDraw(t *testing.T) {
	data := []byte(`{"season": "2026-27", "matches": [
		{"home_id": "PSG", "away_id": "RMA", "matchday": 1},
		{"home_id": "RMA", "away_id": "PSG", "matchday": 2}
	]}`)

	d, err := ParseDraw(data, testClubs(t), tournament.Default())
	require.NoError(t, err)
	assert.Equal(t, "2026-27", d.Season())
	assert.Equal(t, 2, d.MatchCount())

	// Clubs without fixtures stay registered as participants.
	assert.Len(t, d.Clubs(), 3)
}

func TestParseDrawDefaultSeason(t *testing.T) {
	data := []byte(`{"matches": [{"home_id": "PSG", "away_id": "AJA", "matchday": 1}]}`)

	d, err := ParseDraw(data, testClubs(t), tournament.Default())
	require.NoError(t, err)
	assert.Equal(t, "2025-26", d.Season())
}

func TestParseDrawErrors(t *testing.T) {
	clubs := testClubs(t)
	f := tournament.Default()

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", `?`, "decoding draw"},
		{"no matches", `{"season": "2025-26", "matches": []}`, "no matches found"},
		{
			"unknown home club",
			`{"matches": [{"home_id": "ZZZ", "away_id": "PSG", "matchday": 1}]}`,
			`match 1: unknown home club "ZZZ"`,
		},
		{
			"unknown away club",
			`{"matches": [{"home_id": "PSG", "away_id": "ZZZ", "matchday": 1}]}`,
			`match 1: unknown away club "ZZZ"`,
		},
		{
			"matchday out of range",
			`{"matches": [{"home_id": "PSG", "away_id": "RMA", "matchday": 9}]}`,
			"match 1: matchday must be between 1 and 8",
		},
		{
			"self match",
			`{"matches": [{"home_id": "PSG", "away_id": "PSG", "matchday": 1}]}`,
			"match 1: club PSG cannot play against itself",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDraw([]byte(tt.payload), clubs, f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDrawRejectsDuplicateFixture(t *testing.T) {
	data := []byte(`{"matches": [
		{"home_id": "PSG", "away_id": "RMA", "matchday": 1},
		{"home_id": "PSG", "away_id": "RMA", "matchday": 1}
	]}`)

	_, err := ParseDraw(data, testClubs(t), tournament.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, draw.ErrDuplicateMatch)
	assert.Contains(t, err.Error(), "match 2")
}

func TestParseFormatRoundTrip(t *testing.T) {
	data, err := json.Marshal(tournament.Default())
	require.NoError(t, err)

	f, err := ParseFormat(data)
	require.NoError(t, err)
	assert.Equal(t, tournament.Default(), f)
}

func TestParseFormatRejectsIncoherent(t *testing.T) {
	f := tournament.Default()
	f.MatchesPerClub = 10
	data, err := json.Marshal(f)
	require.NoError(t, err)

	_, err = ParseFormat(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent format")
}

func TestParseFormatRejectsGarbage(t *testing.T) {
	_, err := ParseFormat([]byte(`"not a format"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding format")
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()

	clubsPath := filepath.Join(dir, "clubs.json")
	require.NoError(t, os.WriteFile(clubsPath, []byte(`[
		{"id": "PSG", "name": "Paris Saint-Germain", "country": "FRA", "pot": 1},
		{"id": "RMA", "name": "Real Madrid", "country": "ESP", "pot": 1}
	]`), 0o644))

	drawPath := filepath.Join(dir, "draw.json")
	require.NoError(t, os.WriteFile(drawPath, []byte(`{"matches": [
		{"home_id": "PSG", "away_id": "RMA", "matchday": 1}
	]}`), 0o644))

	formatPath := filepath.Join(dir, "format.json")
	formatJSON, err := json.Marshal(tournament.Default())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(formatPath, formatJSON, 0o644))

	clubs, err := Clubs(clubsPath)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	f, err := Format(formatPath)
	require.NoError(t, err)

	d, err := Draw(drawPath, clubs, f)
	require.NoError(t, err)
	assert.Equal(t, 1, d.MatchCount())

	_, err = Clubs(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading clubs file")

	_, err = Draw(filepath.Join(dir, "missing.json"), clubs, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading draw file")

	_, err = Format(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading format file")
}

func TestFileErrorsCarryPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clubs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := Clubs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "no clubs found")
}
