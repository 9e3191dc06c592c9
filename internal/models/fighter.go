package models

// FighterDB represents a fighter row in the database
type FighterDB struct {
	ID                int64   `json:"id" db:"id"`                                // Store-assigned identifier
	Name              string  `json:"name" db:"name"`                            // Display name, at most 50 characters
	Style             string  `json:"style" db:"style"`                          // Fighting style
	HealthBase        int     `json:"healthBase" db:"health_base"`               // Base health points
	AttackMultiplier  float64 `json:"attackMultiplier" db:"attack_multiplier"`   // Attack scaling factor
	DefenseMultiplier float64 `json:"defenseMultiplier" db:"defense_multiplier"` // Defense scaling factor
	Speed             int     `json:"speed" db:"speed"`                          // Speed stat
	MatchesPlayed     int     `json:"matchesPlayed" db:"matches_played"`         // Progression: matches played
	Wins              int     `json:"wins" db:"wins"`                            // Progression: matches won
}

// DefaultHealthBase is used when a create request carries no healthBase.
const DefaultHealthBase = 1000

// FighterWriteRequest is the body of fighter create and update requests.
// Optional fields are pointers: null or absent means "not provided".
// Integer stats are bounded to the INTEGER columns they are stored in.
// swagger:model FighterWriteRequest
type FighterWriteRequest struct {
	// Fighter name
	// required: true
	// example: Rex
	Name string `json:"name" validate:"required,max=50"`

	// Fighting style
	// required: true
	// example: Boxing
	Style string `json:"style" validate:"required,max=50"`

	// Base health, between 500 and 1500
	// example: 1000
	HealthBase *int `json:"healthBase,omitempty" validate:"omitempty,min=500,max=1500"`

	// Attack multiplier
	// example: 1.2
	AttackMultiplier *float64 `json:"attackMultiplier,omitempty"`

	// Defense multiplier
	// example: 0.9
	DefenseMultiplier *float64 `json:"defenseMultiplier,omitempty"`

	// Speed
	// example: 8
	Speed *int `json:"speed,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`

	// Matches played
	// example: 10
	MatchesPlayed *int `json:"matchesPlayed,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`

	// Matches won
	// example: 4
	Wins *int `json:"wins,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`
}

// FighterRead is the wire shape returned for a fighter
// swagger:model FighterRead
type FighterRead struct {
	ID                int64   `json:"id" example:"1"`
	Name              string  `json:"name" example:"Kai"`
	Style             string  `json:"style" example:"Karate"`
	HealthBase        int     `json:"healthBase" example:"1000"`
	AttackMultiplier  float64 `json:"attackMultiplier" example:"1.2"`
	DefenseMultiplier float64 `json:"defenseMultiplier" example:"0.9"`
	Speed             int     `json:"speed" example:"8"`
	MatchesPlayed     int     `json:"matchesPlayed" example:"50"`
	Wins              int     `json:"wins" example:"45"`
	WinRate           float64 `json:"winRate" example:"0.9"` // wins / matchesPlayed, 0 when no matches
}

// Fighter lifecycle operations published as events
const (
	FighterCreated = "created"
	FighterUpdated = "updated"
	FighterDeleted = "deleted"
)

// FighterEvent describes a committed change to a fighter.
type FighterEvent struct {
	EventID   string       `json:"event_id"`          // Unique identifier of the event
	FighterID int64        `json:"fighter_id"`        // Identifier of the changed fighter
	Operation string       `json:"operation"`         // created, updated or deleted
	Timestamp int64        `json:"timestamp"`         // Unix timestamp (seconds) of the commit
	Fighter   *FighterRead `json:"fighter,omitempty"` // State after the change, absent on delete
}
