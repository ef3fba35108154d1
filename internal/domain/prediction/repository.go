package prediction

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Prediction, error)
	ListByMatch(ctx context.Context, matchID string) ([]Prediction, error)
	ListAll(ctx context.Context) ([]Prediction, error)
	Create(ctx context.Context, item Prediction) error
	Update(ctx context.Context, item Prediction) error
}
