package player

import (
	"fmt"
	"time"
)

// Preference indicates which formats a player pair prefers to enter.
type Preference string

const (
	PreferenceSingles Preference = "singles"
	PreferenceDoubles Preference = "doubles"
	PreferenceBoth    Preference = "both"
)

// Player is a registered pair in the auction pool. TeamID and SoldPrice are
// written exactly once, by auction settlement.
type Player struct {
	ID          string
	Name        string
	Partner     string
	Age         int
	SportIDs    []string
	SkillRating int
	BasePrice   int64
	Preference  Preference
	TeamID      string
	SoldPrice   int64
	CreatedAt   time.Time
}

// Sold reports whether the player already belongs to a team. Sold players can
// never re-enter the auction.
func (p Player) Sold() bool {
	return p.TeamID != ""
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("player base price must be greater than zero")
	}
	switch p.Preference {
	case PreferenceSingles, PreferenceDoubles, PreferenceBoth, "":
	default:
		return fmt.Errorf("invalid playing preference: %s", p.Preference)
	}

	return nil
}
