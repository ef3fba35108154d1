package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/match"
)

const (
	selectMatches = `SELECT id, sport_id, home_team_id, away_team_id, kickoff_at, venue, status,
		home_score, away_score, winner_team_id, best_player_id, created_at
		FROM matches ORDER BY kickoff_at, id`
	selectMatchByID = `SELECT id, sport_id, home_team_id, away_team_id, kickoff_at, venue, status,
		home_score, away_score, winner_team_id, best_player_id, created_at
		FROM matches WHERE id = $1`
	insertMatch = `INSERT INTO matches (id, sport_id, home_team_id, away_team_id, kickoff_at, venue,
		status, home_score, away_score, winner_team_id, best_player_id, created_at)
		VALUES (:id, :sport_id, :home_team_id, :away_team_id, :kickoff_at, :venue,
		:status, :home_score, :away_score, :winner_team_id, :best_player_id, :created_at)`
	updateMatch = `UPDATE matches SET kickoff_at = :kickoff_at, venue = :venue, status = :status,
		home_score = :home_score, away_score = :away_score, winner_team_id = :winner_team_id,
		best_player_id = :best_player_id WHERE id = :id`
	deleteMatch = `DELETE FROM matches WHERE id = $1`
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, selectMatches); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, selectMatchByID, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	if _, err := r.db.NamedExecContext(ctx, insertMatch, matchToTableModel(item)); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	result, err := r.db.NamedExecContext(ctx, updateMatch, matchToTableModel(item))
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update match: no row for id %s", item.ID)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	if _, err := r.db.ExecContext(ctx, deleteMatch, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
