package postgres

import (
	"database/sql"
	"time"

	"github.com/sportarena/api/internal/domain/match"
)

type matchTableModel struct {
	ID           string        `db:"id"`
	SportID      string        `db:"sport_id"`
	HomeTeamID   string        `db:"home_team_id"`
	AwayTeamID   string        `db:"away_team_id"`
	KickoffAt    time.Time     `db:"kickoff_at"`
	Venue        string        `db:"venue"`
	Status       string        `db:"status"`
	HomeScore    sql.NullInt64 `db:"home_score"`
	AwayScore    sql.NullInt64 `db:"away_score"`
	WinnerTeamID string        `db:"winner_team_id"`
	BestPlayerID string        `db:"best_player_id"`
	CreatedAt    time.Time     `db:"created_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:           m.ID,
		SportID:      m.SportID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		KickoffAt:    m.KickoffAt,
		Venue:        m.Venue,
		Status:       match.Status(m.Status),
		HomeScore:    nullInt64ToIntPtr(m.HomeScore),
		AwayScore:    nullInt64ToIntPtr(m.AwayScore),
		WinnerTeamID: m.WinnerTeamID,
		BestPlayerID: m.BestPlayerID,
		CreatedAt:    m.CreatedAt,
	}
}

func matchToTableModel(item match.Match) matchTableModel {
	return matchTableModel{
		ID:           item.ID,
		SportID:      item.SportID,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		KickoffAt:    item.KickoffAt,
		Venue:        item.Venue,
		Status:       string(item.Status),
		HomeScore:    intPtrToNullInt64(item.HomeScore),
		AwayScore:    intPtrToNullInt64(item.AwayScore),
		WinnerTeamID: item.WinnerTeamID,
		BestPlayerID: item.BestPlayerID,
		CreatedAt:    item.CreatedAt,
	}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
