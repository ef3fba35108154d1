package memory

import (
	"time"

	"github.com/sportarena/api/internal/domain/player"
	"github.com/sportarena/api/internal/domain/sport"
	"github.com/sportarena/api/internal/domain/team"
)

const (
	SportIDBadminton  = "badminton"
	SportIDPickleball = "pickleball"
	SportIDCricket    = "cricket"
	SportIDBowling    = "bowling"
	SportIDArcade     = "arcade"
)

var seedTime = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

// SeedSports returns the default league disciplines.
func SeedSports() []sport.Sport {
	return []sport.Sport{
		{ID: SportIDBadminton, Name: "Badminton", Kind: sport.KindTeam, Gender: "mixed", MaxPlayers: 4, ScoringMethod: "points", CreatedAt: seedTime},
		{ID: SportIDPickleball, Name: "Pickleball", Kind: sport.KindTeam, Gender: "mixed", MaxPlayers: 4, ScoringMethod: "points", CreatedAt: seedTime},
		{ID: SportIDCricket, Name: "Cricket", Kind: sport.KindTeam, Gender: "men", MaxPlayers: 11, ScoringMethod: "runs", CreatedAt: seedTime},
		{ID: SportIDBowling, Name: "Bowling", Kind: sport.KindIndividual, Gender: "mixed", MaxPlayers: 2, ScoringMethod: "points", CreatedAt: seedTime},
		{ID: SportIDArcade, Name: "Arcade Games", Kind: sport.KindIndividual, Gender: "mixed", MaxPlayers: 2, ScoringMethod: "points", CreatedAt: seedTime},
	}
}

// SeedTeams returns demo franchises with full budgets.
func SeedTeams() []team.Team {
	mk := func(id, name, owner string) team.Team {
		return team.Team{
			ID:        id,
			Name:      name,
			Owner:     owner,
			Budget:    10000,
			Spent:     0,
			PlayerIDs: []string{},
			Active:    true,
			CreatedAt: seedTime,
		}
	}

	return []team.Team{
		mk("team-falcons", "Falcons", "Ravi"),
		mk("team-titans", "Titans", "Meera"),
		mk("team-chargers", "Chargers", "Arjun"),
		mk("team-royals", "Royals", "Divya"),
	}
}

// SeedPlayers returns an unsold demo auction pool.
func SeedPlayers() []player.Player {
	mk := func(id, name, partner string, rating int, base int64, sports ...string) player.Player {
		return player.Player{
			ID:          id,
			Name:        name,
			Partner:     partner,
			Age:         30,
			SportIDs:    sports,
			SkillRating: rating,
			BasePrice:   base,
			Preference:  player.PreferenceBoth,
			CreatedAt:   seedTime,
		}
	}

	return []player.Player{
		mk("pl-anand", "Anand", "Priya", 8, 1000, SportIDBadminton, SportIDCricket),
		mk("pl-vikram", "Vikram", "Sana", 7, 800, SportIDPickleball, SportIDBowling),
		mk("pl-rahul", "Rahul", "Nisha", 9, 1500, SportIDCricket),
		mk("pl-kiran", "Kiran", "Asha", 6, 500, SportIDBadminton, SportIDArcade),
		mk("pl-dev", "Dev", "Lata", 5, 500, SportIDBowling),
		mk("pl-suresh", "Suresh", "Maya", 7, 900, SportIDPickleball, SportIDCricket),
	}
}
