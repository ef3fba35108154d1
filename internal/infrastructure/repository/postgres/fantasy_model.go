package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/sportarena/api/internal/domain/fantasy"
)

type fantasyEntryTableModel struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	SportID       string         `db:"sport_id"`
	Name          string         `db:"name"`
	PlayerIDs     pq.StringArray `db:"player_ids"`
	CaptainID     string         `db:"captain_id"`
	ViceCaptainID string         `db:"vice_captain_id"`
	Points        int            `db:"points"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m fantasyEntryTableModel) toDomain() fantasy.Entry {
	return fantasy.Entry{
		ID:            m.ID,
		UserID:        m.UserID,
		SportID:       m.SportID,
		Name:          m.Name,
		PlayerIDs:     []string(m.PlayerIDs),
		CaptainID:     m.CaptainID,
		ViceCaptainID: m.ViceCaptainID,
		Points:        m.Points,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fantasyEntryToTableModel(item fantasy.Entry) fantasyEntryTableModel {
	return fantasyEntryTableModel{
		ID:            item.ID,
		UserID:        item.UserID,
		SportID:       item.SportID,
		Name:          item.Name,
		PlayerIDs:     pq.StringArray(item.PlayerIDs),
		CaptainID:     item.CaptainID,
		ViceCaptainID: item.ViceCaptainID,
		Points:        item.Points,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
