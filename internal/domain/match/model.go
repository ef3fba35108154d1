package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Match is a fixture between two franchises in one sport.
type Match struct {
	ID           string
	SportID      string
	HomeTeamID   string
	AwayTeamID   string
	KickoffAt    time.Time
	Venue        string
	Status       Status
	HomeScore    *int
	AwayScore    *int
	WinnerTeamID string
	BestPlayerID string
	CreatedAt    time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.SportID == "" {
		return fmt.Errorf("match sport id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires two teams")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}
	switch m.Status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}

// Result carries the outcome recorded by an admin once a match finishes.
type Result struct {
	HomeScore    int
	AwayScore    int
	WinnerTeamID string
	BestPlayerID string
}
