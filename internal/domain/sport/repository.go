package sport

import "context"

type Repository interface {
	List(ctx context.Context) ([]Sport, error)
	GetByID(ctx context.Context, sportID string) (Sport, bool, error)
	Create(ctx context.Context, item Sport) error
	Delete(ctx context.Context, sportID string) error
}
