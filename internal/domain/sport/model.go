package sport

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindTeam       Kind = "team"
	KindIndividual Kind = "individual"
)

// Sport is one discipline played in the league (badminton, cricket, ...).
type Sport struct {
	ID            string
	Name          string
	Kind          Kind
	Gender        string
	MaxPlayers    int
	ScoringMethod string
	CreatedAt     time.Time
}

func (s Sport) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sport id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("sport name is required")
	}
	if s.Kind != KindTeam && s.Kind != KindIndividual {
		return fmt.Errorf("invalid sport kind: %s", s.Kind)
	}
	if s.MaxPlayers <= 0 {
		return fmt.Errorf("sport max players must be greater than zero")
	}

	return nil
}
