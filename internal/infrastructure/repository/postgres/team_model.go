package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/sportarena/api/internal/domain/team"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Owner     string         `db:"owner"`
	Contact   string         `db:"contact"`
	Budget    int64          `db:"budget"`
	Spent     int64          `db:"spent"`
	PlayerIDs pq.StringArray `db:"player_ids"`
	Active    bool           `db:"active"`
	CreatedAt time.Time      `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		Owner:     m.Owner,
		Contact:   m.Contact,
		Budget:    m.Budget,
		Spent:     m.Spent,
		PlayerIDs: []string(m.PlayerIDs),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func teamToTableModel(item team.Team) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Owner:     item.Owner,
		Contact:   item.Contact,
		Budget:    item.Budget,
		Spent:     item.Spent,
		PlayerIDs: pq.StringArray(item.PlayerIDs),
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
	}
}
