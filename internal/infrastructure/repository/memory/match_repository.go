package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
	order []string
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{items: make(map[string]match.Match)}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, cloneMatch(item))
		}
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(item), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = cloneMatch(item)

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	return r.Create(ctx, item)
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, matchID)
	for idx, id := range r.order {
		if id == matchID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return nil
}

func cloneMatch(m match.Match) match.Match {
	copied := m
	if m.HomeScore != nil {
		v := *m.HomeScore
		copied.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		copied.AwayScore = &v
	}
	return copied
}
