package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/fantasy"
)

const (
	selectFantasyColumns = `SELECT id, user_id, sport_id, name, player_ids, captain_id,
		vice_captain_id, points, created_at, updated_at FROM fantasy_entries`
	selectFantasyByUser = selectFantasyColumns + ` WHERE user_id = $1 ORDER BY created_at, id`
	selectAllFantasy    = selectFantasyColumns + ` ORDER BY created_at, id`
	selectFantasyByID   = selectFantasyColumns + ` WHERE id = $1`
	insertFantasyEntry  = `INSERT INTO fantasy_entries (id, user_id, sport_id, name, player_ids,
		captain_id, vice_captain_id, points, created_at, updated_at)
		VALUES (:id, :user_id, :sport_id, :name, :player_ids,
		:captain_id, :vice_captain_id, :points, :created_at, :updated_at)`
	updateFantasyEntry = `UPDATE fantasy_entries SET name = :name, player_ids = :player_ids,
		captain_id = :captain_id, vice_captain_id = :vice_captain_id, points = :points,
		updated_at = :updated_at WHERE id = :id`
)

type FantasyRepository struct {
	db *sqlx.DB
}

func NewFantasyRepository(db *sqlx.DB) *FantasyRepository {
	return &FantasyRepository{db: db}
}

func (r *FantasyRepository) ListByUser(ctx context.Context, userID string) ([]fantasy.Entry, error) {
	return r.selectMany(ctx, selectFantasyByUser, userID)
}

func (r *FantasyRepository) ListAll(ctx context.Context) ([]fantasy.Entry, error) {
	return r.selectMany(ctx, selectAllFantasy)
}

func (r *FantasyRepository) selectMany(ctx context.Context, query string, args ...any) ([]fantasy.Entry, error) {
	var rows []fantasyEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy entries: %w", err)
	}

	out := make([]fantasy.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *FantasyRepository) GetByID(ctx context.Context, entryID string) (fantasy.Entry, bool, error) {
	var row fantasyEntryTableModel
	if err := r.db.GetContext(ctx, &row, selectFantasyByID, entryID); err != nil {
		if isNotFound(err) {
			return fantasy.Entry{}, false, nil
		}
		return fantasy.Entry{}, false, fmt.Errorf("select fantasy entry by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *FantasyRepository) Create(ctx context.Context, item fantasy.Entry) error {
	if _, err := r.db.NamedExecContext(ctx, insertFantasyEntry, fantasyEntryToTableModel(item)); err != nil {
		return fmt.Errorf("insert fantasy entry: %w", err)
	}

	return nil
}

func (r *FantasyRepository) Update(ctx context.Context, item fantasy.Entry) error {
	result, err := r.db.NamedExecContext(ctx, updateFantasyEntry, fantasyEntryToTableModel(item))
	if err != nil {
		return fmt.Errorf("update fantasy entry: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update fantasy entry: no row for id %s", item.ID)
	}

	return nil
}
