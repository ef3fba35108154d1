package prediction

import (
	"fmt"
	"time"
)

// Scoring constants for settled predictions.
const (
	PointsCorrectWinner = 10
	PointsExactScore    = 5
)

// Prediction is a user's call on a match outcome. Points are written once by
// the scorer when the match result is recorded, after which the prediction is
// locked.
type Prediction struct {
	ID                string
	UserID            string
	MatchID           string
	PredictedWinnerID string
	PredictedScore    string
	Points            int
	Locked            bool
	CreatedAt         time.Time
}

func (p Prediction) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("prediction id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("prediction user id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if p.PredictedWinnerID == "" {
		return fmt.Errorf("predicted winner is required")
	}

	return nil
}
