package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/sport"
)

type SportRepository struct {
	mu    sync.RWMutex
	items map[string]sport.Sport
	order []string
}

func NewSportRepository(sports []sport.Sport) *SportRepository {
	r := &SportRepository{items: make(map[string]sport.Sport, len(sports))}
	for _, item := range sports {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}

	return r
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID string) (sport.Sport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[sportID]
	return item, ok, nil
}

func (r *SportRepository) Create(_ context.Context, item sport.Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *SportRepository) Delete(_ context.Context, sportID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sportID)
	for idx, id := range r.order {
		if id == sportID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return nil
}
