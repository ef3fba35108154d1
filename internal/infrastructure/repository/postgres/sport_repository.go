package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/sport"
)

const (
	selectSports = `SELECT id, name, kind, gender, max_players, scoring_method, created_at
		FROM sports ORDER BY created_at, id`
	selectSportByID = `SELECT id, name, kind, gender, max_players, scoring_method, created_at
		FROM sports WHERE id = $1`
	insertSport = `INSERT INTO sports (id, name, kind, gender, max_players, scoring_method, created_at)
		VALUES (:id, :name, :kind, :gender, :max_players, :scoring_method, :created_at)`
	deleteSport = `DELETE FROM sports WHERE id = $1`
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, selectSports); err != nil {
		return nil, fmt.Errorf("select sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID string) (sport.Sport, bool, error) {
	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, selectSportByID, sportID); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		return sport.Sport{}, false, fmt.Errorf("select sport by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) error {
	if _, err := r.db.NamedExecContext(ctx, insertSport, sportToTableModel(item)); err != nil {
		return fmt.Errorf("insert sport: %w", err)
	}

	return nil
}

func (r *SportRepository) Delete(ctx context.Context, sportID string) error {
	if _, err := r.db.ExecContext(ctx, deleteSport, sportID); err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}

	return nil
}
