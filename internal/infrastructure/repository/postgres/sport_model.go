package postgres

import (
	"time"

	"github.com/sportarena/api/internal/domain/sport"
)

type sportTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Kind          string    `db:"kind"`
	Gender        string    `db:"gender"`
	MaxPlayers    int       `db:"max_players"`
	ScoringMethod string    `db:"scoring_method"`
	CreatedAt     time.Time `db:"created_at"`
}

func (m sportTableModel) toDomain() sport.Sport {
	return sport.Sport{
		ID:            m.ID,
		Name:          m.Name,
		Kind:          sport.Kind(m.Kind),
		Gender:        m.Gender,
		MaxPlayers:    m.MaxPlayers,
		ScoringMethod: m.ScoringMethod,
		CreatedAt:     m.CreatedAt,
	}
}

func sportToTableModel(item sport.Sport) sportTableModel {
	return sportTableModel{
		ID:            item.ID,
		Name:          item.Name,
		Kind:          string(item.Kind),
		Gender:        item.Gender,
		MaxPlayers:    item.MaxPlayers,
		ScoringMethod: item.ScoringMethod,
		CreatedAt:     item.CreatedAt,
	}
}
