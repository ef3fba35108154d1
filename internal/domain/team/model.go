package team

import (
	"fmt"
	"time"
)

// Team is a franchise that bids for players in the auction.
type Team struct {
	ID        string
	Name      string
	Owner     string
	Contact   string
	Budget    int64
	Spent     int64
	PlayerIDs []string
	Active    bool
	CreatedAt time.Time
}

// Remaining is the budget still available for bidding. Spent only moves
// through auction settlement, so this is settled headroom, not pending bids.
func (t Team) Remaining() int64 {
	return t.Budget - t.Spent
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Budget <= 0 {
		return fmt.Errorf("team budget must be greater than zero")
	}
	if t.Spent < 0 || t.Spent > t.Budget {
		return fmt.Errorf("team spent must stay within budget")
	}

	return nil
}
