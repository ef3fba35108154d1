package team

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
}
