package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/sportarena/api/internal/domain/player"
)

type playerTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Partner     string         `db:"partner"`
	Age         int            `db:"age"`
	SportIDs    pq.StringArray `db:"sport_ids"`
	SkillRating int            `db:"skill_rating"`
	BasePrice   int64          `db:"base_price"`
	Preference  string         `db:"preference"`
	TeamID      string         `db:"team_id"`
	SoldPrice   int64          `db:"sold_price"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		Name:        m.Name,
		Partner:     m.Partner,
		Age:         m.Age,
		SportIDs:    []string(m.SportIDs),
		SkillRating: m.SkillRating,
		BasePrice:   m.BasePrice,
		Preference:  player.Preference(m.Preference),
		TeamID:      m.TeamID,
		SoldPrice:   m.SoldPrice,
		CreatedAt:   m.CreatedAt,
	}
}

func playerToTableModel(item player.Player) playerTableModel {
	return playerTableModel{
		ID:          item.ID,
		Name:        item.Name,
		Partner:     item.Partner,
		Age:         item.Age,
		SportIDs:    pq.StringArray(item.SportIDs),
		SkillRating: item.SkillRating,
		BasePrice:   item.BasePrice,
		Preference:  string(item.Preference),
		TeamID:      item.TeamID,
		SoldPrice:   item.SoldPrice,
		CreatedAt:   item.CreatedAt,
	}
}
