// Package mappers converts fighters between their stored and wire shapes.
package mappers

import "github.com/temmu/temmu-api/internal/models"

// ToFighter builds a new entity from a create request.
// A missing healthBase falls back to models.DefaultHealthBase.
func ToFighter(req models.FighterWriteRequest) *models.FighterDB {
	f := &models.FighterDB{HealthBase: models.DefaultHealthBase}
	ApplyUpdate(req, f)
	return f
}

// ApplyUpdate copies every provided field of req onto dst.
// Nil optional fields leave dst untouched; zero values are copied.
func ApplyUpdate(req models.FighterWriteRequest, dst *models.FighterDB) {
	dst.Name = req.Name
	dst.Style = req.Style
	if req.HealthBase != nil {
		dst.HealthBase = *req.HealthBase
	}
	if req.AttackMultiplier != nil {
		dst.AttackMultiplier = *req.AttackMultiplier
	}
	if req.DefenseMultiplier != nil {
		dst.DefenseMultiplier = *req.DefenseMultiplier
	}
	if req.Speed != nil {
		dst.Speed = *req.Speed
	}
	if req.MatchesPlayed != nil {
		dst.MatchesPlayed = *req.MatchesPlayed
	}
	if req.Wins != nil {
		dst.Wins = *req.Wins
	}
}

// ToFighterRead maps an entity to its read shape, deriving the win rate.
func ToFighterRead(f *models.FighterDB) models.FighterRead {
	return models.FighterRead{
		ID:                f.ID,
		Name:              f.Name,
		Style:             f.Style,
		HealthBase:        f.HealthBase,
		AttackMultiplier:  f.AttackMultiplier,
		DefenseMultiplier: f.DefenseMultiplier,
		Speed:             f.Speed,
		MatchesPlayed:     f.MatchesPlayed,
		Wins:              f.Wins,
		WinRate:           WinRate(f.Wins, f.MatchesPlayed),
	}
}

// ToFighterReadList maps a slice of entities. The result is never nil.
func ToFighterReadList(fighters []models.FighterDB) []models.FighterRead {
	out := make([]models.FighterRead, 0, len(fighters))
	for i := range fighters {
		out = append(out, ToFighterRead(&fighters[i]))
	}
	return out
}

// WinRate returns wins/matchesPlayed, or 0 when no match was played.
func WinRate(wins, matchesPlayed int) float64 {
	if matchesPlayed <= 0 {
		return 0
	}
	return float64(wins) / float64(matchesPlayed)
}
