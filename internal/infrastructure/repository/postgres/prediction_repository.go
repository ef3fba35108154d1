package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/prediction"
)

const (
	selectPredictionColumns = `SELECT id, user_id, match_id, predicted_winner_id, predicted_score,
		points, locked, created_at FROM predictions`
	selectPredictionsByUser  = selectPredictionColumns + ` WHERE user_id = $1 ORDER BY created_at, id`
	selectPredictionsByMatch = selectPredictionColumns + ` WHERE match_id = $1 ORDER BY created_at, id`
	selectAllPredictions     = selectPredictionColumns + ` ORDER BY created_at, id`
	insertPrediction         = `INSERT INTO predictions (id, user_id, match_id, predicted_winner_id,
		predicted_score, points, locked, created_at)
		VALUES (:id, :user_id, :match_id, :predicted_winner_id,
		:predicted_score, :points, :locked, :created_at)`
	updatePrediction = `UPDATE predictions SET predicted_winner_id = :predicted_winner_id,
		predicted_score = :predicted_score, points = :points, locked = :locked WHERE id = :id`
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	return r.selectMany(ctx, selectPredictionsByUser, userID)
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	return r.selectMany(ctx, selectPredictionsByMatch, matchID)
}

func (r *PredictionRepository) ListAll(ctx context.Context) ([]prediction.Prediction, error) {
	return r.selectMany(ctx, selectAllPredictions)
}

func (r *PredictionRepository) selectMany(ctx context.Context, query string, args ...any) ([]prediction.Prediction, error) {
	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PredictionRepository) Create(ctx context.Context, item prediction.Prediction) error {
	if _, err := r.db.NamedExecContext(ctx, insertPrediction, predictionToTableModel(item)); err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}

	return nil
}

func (r *PredictionRepository) Update(ctx context.Context, item prediction.Prediction) error {
	result, err := r.db.NamedExecContext(ctx, updatePrediction, predictionToTableModel(item))
	if err != nil {
		return fmt.Errorf("update prediction: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update prediction: no row for id %s", item.ID)
	}

	return nil
}
