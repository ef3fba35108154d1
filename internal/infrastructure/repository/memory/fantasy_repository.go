package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/fantasy"
)

type FantasyRepository struct {
	mu    sync.RWMutex
	items map[string]fantasy.Entry
	order []string
}

func NewFantasyRepository() *FantasyRepository {
	return &FantasyRepository{items: make(map[string]fantasy.Entry)}
}

func (r *FantasyRepository) ListByUser(_ context.Context, userID string) ([]fantasy.Entry, error) {
	return r.list(func(e fantasy.Entry) bool { return e.UserID == userID })
}

func (r *FantasyRepository) ListAll(_ context.Context) ([]fantasy.Entry, error) {
	return r.list(func(fantasy.Entry) bool { return true })
}

func (r *FantasyRepository) GetByID(_ context.Context, entryID string) (fantasy.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[entryID]
	if !ok {
		return fantasy.Entry{}, false, nil
	}

	return cloneEntry(item), true, nil
}

func (r *FantasyRepository) Create(_ context.Context, item fantasy.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = cloneEntry(item)

	return nil
}

func (r *FantasyRepository) Update(ctx context.Context, item fantasy.Entry) error {
	return r.Create(ctx, item)
}

func (r *FantasyRepository) list(keep func(fantasy.Entry) bool) ([]fantasy.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Entry, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && keep(item) {
			out = append(out, cloneEntry(item))
		}
	}

	return out, nil
}

func cloneEntry(e fantasy.Entry) fantasy.Entry {
	copied := e
	copied.PlayerIDs = append([]string(nil), e.PlayerIDs...)
	return copied
}
