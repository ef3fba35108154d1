package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
	order []string
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{items: make(map[string]prediction.Prediction)}
}

func (r *PredictionRepository) ListByUser(_ context.Context, userID string) ([]prediction.Prediction, error) {
	return r.list(func(p prediction.Prediction) bool { return p.UserID == userID })
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID string) ([]prediction.Prediction, error) {
	return r.list(func(p prediction.Prediction) bool { return p.MatchID == matchID })
}

func (r *PredictionRepository) ListAll(_ context.Context) ([]prediction.Prediction, error) {
	return r.list(func(prediction.Prediction) bool { return true })
}

func (r *PredictionRepository) Create(_ context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *PredictionRepository) Update(ctx context.Context, item prediction.Prediction) error {
	return r.Create(ctx, item)
}

func (r *PredictionRepository) list(keep func(prediction.Prediction) bool) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && keep(item) {
			out = append(out, item)
		}
	}

	return out, nil
}
