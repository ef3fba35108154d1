package fantasy

import (
	"fmt"
	"time"
)

// Entry is a user's fantasy selection for one sport: a set of auctioned
// players with a captain and vice captain.
type Entry struct {
	ID            string
	UserID        string
	SportID       string
	Name          string
	PlayerIDs     []string
	CaptainID     string
	ViceCaptainID string
	Points        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	if e.UserID == "" {
		return fmt.Errorf("entry user id is required")
	}
	if e.SportID == "" {
		return fmt.Errorf("entry sport id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	if len(e.PlayerIDs) == 0 {
		return fmt.Errorf("entry players are required")
	}
	if e.CaptainID != "" && e.CaptainID == e.ViceCaptainID {
		return fmt.Errorf("captain and vice captain must differ")
	}

	return nil
}
