package match

import "context"

type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID string) error
}
