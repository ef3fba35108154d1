package postgres

import (
	"time"

	"github.com/sportarena/api/internal/domain/prediction"
)

type predictionTableModel struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	MatchID           string    `db:"match_id"`
	PredictedWinnerID string    `db:"predicted_winner_id"`
	PredictedScore    string    `db:"predicted_score"`
	Points            int       `db:"points"`
	Locked            bool      `db:"locked"`
	CreatedAt         time.Time `db:"created_at"`
}

func (m predictionTableModel) toDomain() prediction.Prediction {
	return prediction.Prediction{
		ID:                m.ID,
		UserID:            m.UserID,
		MatchID:           m.MatchID,
		PredictedWinnerID: m.PredictedWinnerID,
		PredictedScore:    m.PredictedScore,
		Points:            m.Points,
		Locked:            m.Locked,
		CreatedAt:         m.CreatedAt,
	}
}

func predictionToTableModel(item prediction.Prediction) predictionTableModel {
	return predictionTableModel{
		ID:                item.ID,
		UserID:            item.UserID,
		MatchID:           item.MatchID,
		PredictedWinnerID: item.PredictedWinnerID,
		PredictedScore:    item.PredictedScore,
		Points:            item.Points,
		Locked:            item.Locked,
		CreatedAt:         item.CreatedAt,
	}
}
