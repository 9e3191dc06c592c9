package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/temmu/temmu-api/internal/models"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestWinRate(t *testing.T) {
	tests := []struct {
		name    string
		wins    int
		matches int
		want    float64
	}{
		{"no matches", 0, 0, 0},
		{"wins without matches", 3, 0, 0},
		{"forty percent", 4, 10, 0.4},
		{"all won", 45, 50, 0.9},
		{"none won", 0, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WinRate(tt.wins, tt.matches))
		})
	}
}

func TestToFighter(t *testing.T) {
	t.Run("defaults health base", func(t *testing.T) {
		f := ToFighter(models.FighterWriteRequest{Name: "Rex", Style: "Boxing"})

		assert.Equal(t, "Rex", f.Name)
		assert.Equal(t, "Boxing", f.Style)
		assert.Equal(t, models.DefaultHealthBase, f.HealthBase)
		assert.Zero(t, f.ID)
	})

	t.Run("copies every provided field", func(t *testing.T) {
		f := ToFighter(models.FighterWriteRequest{
			Name:              "Kai",
			Style:             "Karate",
			HealthBase:        intPtr(900),
			AttackMultiplier:  floatPtr(1.2),
			DefenseMultiplier: floatPtr(0.9),
			Speed:             intPtr(8),
			MatchesPlayed:     intPtr(50),
			Wins:              intPtr(45),
		})

		assert.Equal(t, &models.FighterDB{
			Name:              "Kai",
			Style:             "Karate",
			HealthBase:        900,
			AttackMultiplier:  1.2,
			DefenseMultiplier: 0.9,
			Speed:             8,
			MatchesPlayed:     50,
			Wins:              45,
		}, f)
	})
}

func TestApplyUpdate(t *testing.T) {
	existing := func() *models.FighterDB {
		return &models.FighterDB{
			ID:                7,
			Name:              "Ryu",
			Style:             "Karate",
			HealthBase:        1000,
			AttackMultiplier:  1.1,
			DefenseMultiplier: 1.0,
			Speed:             5,
			MatchesPlayed:     10,
			Wins:              4,
		}
	}

	t.Run("absent fields are left untouched", func(t *testing.T) {
		dst := existing()
		ApplyUpdate(models.FighterWriteRequest{Name: "Ken", Style: "Shotokan"}, dst)

		want := existing()
		want.Name = "Ken"
		want.Style = "Shotokan"
		assert.Equal(t, want, dst)
	})

	t.Run("zero values overwrite", func(t *testing.T) {
		dst := existing()
		ApplyUpdate(models.FighterWriteRequest{
			Name:          "Ryu",
			Style:         "Karate",
			Speed:         intPtr(0),
			MatchesPlayed: intPtr(0),
			Wins:          intPtr(0),
		}, dst)

		assert.Zero(t, dst.Speed)
		assert.Zero(t, dst.MatchesPlayed)
		assert.Zero(t, dst.Wins)
		assert.Equal(t, 1000, dst.HealthBase)
	})

	t.Run("idempotent", func(t *testing.T) {
		req := models.FighterWriteRequest{Name: "Ryu", Style: "Karate", HealthBase: intPtr(1200), Wins: intPtr(6)}
		once := existing()
		ApplyUpdate(req, once)
		twice := existing()
		ApplyUpdate(req, twice)
		ApplyUpdate(req, twice)

		assert.Equal(t, once, twice)
	})

	t.Run("id is never touched", func(t *testing.T) {
		dst := existing()
		ApplyUpdate(models.FighterWriteRequest{Name: "X", Style: "Y"}, dst)
		assert.Equal(t, int64(7), dst.ID)
	})
}

func TestToFighterRead(t *testing.T) {
	f := &models.FighterDB{ID: 3, Name: "Lana", Style: "Judo", HealthBase: 950, MatchesPlayed: 50, Wins: 20}

	r := ToFighterRead(f)

	assert.Equal(t, int64(3), r.ID)
	assert.Equal(t, "Lana", r.Name)
	assert.Equal(t, 950, r.HealthBase)
	assert.InDelta(t, 0.4, r.WinRate, 1e-9)
}

func TestToFighterReadList(t *testing.T) {
	assert.NotNil(t, ToFighterReadList(nil))
	assert.Empty(t, ToFighterReadList(nil))

	list := ToFighterReadList([]models.FighterDB{
		{ID: 1, Name: "Ryu", MatchesPlayed: 2, Wins: 1},
		{ID: 2, Name: "Ken"},
	})

	assert.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, 0.5, list[0].WinRate)
	assert.Equal(t, 0.0, list[1].WinRate)
}
