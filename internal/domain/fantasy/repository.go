package fantasy

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, entryID string) (Entry, bool, error)
	Create(ctx context.Context, item Entry) error
	Update(ctx context.Context, item Entry) error
}
