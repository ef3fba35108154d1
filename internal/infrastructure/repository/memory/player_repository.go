package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
	order []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{items: make(map[string]player.Player, len(players))}
	for _, item := range players {
		r.items[item.ID] = clonePlayer(item)
		r.order = append(r.order, item.ID)
	}

	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, clonePlayer(item))
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = clonePlayer(item)

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[item.ID]
	if !exists {
		r.order = append(r.order, item.ID)
		r.items[item.ID] = clonePlayer(item)
		return nil
	}

	// Sale fields belong to settlement; a stale snapshot must not write
	// them back.
	item.TeamID = current.TeamID
	item.SoldPrice = current.SoldPrice
	r.items[item.ID] = clonePlayer(item)

	return nil
}

// applySale is the settlement write path for the fields Update refuses to touch.
func (r *PlayerRepository) applySale(playerID, teamID string, price int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[playerID]
	if !ok {
		return
	}
	item.TeamID = teamID
	item.SoldPrice = price
	r.items[playerID] = item
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, playerID)
	for idx, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return nil
}

func clonePlayer(p player.Player) player.Player {
	copied := p
	copied.SportIDs = append([]string(nil), p.SportIDs...)
	return copied
}
