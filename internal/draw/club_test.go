package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClub(t *testing.T) {
	c, err := NewClub("PSG", "Paris Saint-Germain", "FRA", Pot1)
	require.NoError(t, err)
	assert.Equal(t, "PSG", c.ID)
	assert.Equal(t, "Paris Saint-Germain", c.Name)
	assert.Equal(t, "FRA", c.Country)
	assert.Equal(t, Pot1, c.Pot)
	assert.Equal(t, "Paris Saint-Germain (PSG)", c.String())
}

func TestNewClubRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		clubName string
		country  string
		pot      Pot
		wantErr  string
	}{
		{"empty id", "", "Club", "FRA", Pot1, "id must not be empty"},
		{"blank id", "   ", "Club", "FRA", Pot1, "id must not be empty"},
		{"empty name", "PSG", "", "FRA", Pot1, "name must not be empty"},
		{"lowercase country", "PSG", "Club", "fra", Pot1, "3-letter uppercase"},
		{"short country", "PSG", "Club", "FR", Pot1, "3-letter uppercase"},
		{"digit in country", "PSG", "Club", "FR1", Pot1, "3-letter uppercase"},
		{"pot too low", "PSG", "Club", "FRA", 0, "pot must be between 1 and 4"},
		{"pot too high", "PSG", "Club", "FRA", 5, "pot must be between 1 and 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClub(tt.id, tt.clubName, tt.country, tt.pot)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPotFromInt(t *testing.T) {
	for v := 1; v <= 4; v++ {
		p, err := PotFromInt(v)
		require.NoError(t, err)
		assert.Equal(t, Pot(v), p)
		assert.True(t, p.Valid())
	}
	for _, v := range []int{-1, 0, 5, 42} {
		_, err := PotFromInt(v)
		assert.Error(t, err, "pot %d", v)
	}
}

func TestPotsAscending(t *testing.T) {
	assert.Equal(t, []Pot{Pot1, Pot2, Pot3, Pot4}, Pots())
}

func TestSameCountry(t *testing.T) {
	a, err := NewClub("BVB", "Borussia Dortmund", "GER", Pot1)
	require.NoError(t, err)
	b, err := NewClub("FCB", "Bayern Munich", "GER", Pot1)
	require.NoError(t, err)
	c, err := NewClub("RMA", "Real Madrid", "ESP", Pot1)
	require.NoError(t, err)

	assert.True(t, a.SameCountry(b))
	assert.False(t, a.SameCountry(c))
	assert.False(t, a.SameCountry(nil))
}
