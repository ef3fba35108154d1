package memory

import (
	"context"
	"sync"

	"github.com/sportarena/api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
	order []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{items: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		r.items[item.ID] = cloneTeam(item)
		r.order = append(r.order, item.ID)
	}

	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, cloneTeam(item))
		}
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(item), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = cloneTeam(item)

	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[item.ID]
	if !exists {
		r.order = append(r.order, item.ID)
		r.items[item.ID] = cloneTeam(item)
		return nil
	}

	// Spent and the roster belong to settlement; a stale snapshot must not
	// write them back.
	item.Spent = current.Spent
	item.PlayerIDs = current.PlayerIDs
	r.items[item.ID] = cloneTeam(item)

	return nil
}

// applySale is the settlement write path for the fields Update refuses to touch.
func (r *TeamRepository) applySale(teamID, playerID string, price int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[teamID]
	if !ok {
		return
	}
	item.Spent += price
	item.PlayerIDs = append(item.PlayerIDs, playerID)
	r.items[teamID] = item
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, teamID)
	for idx, id := range r.order {
		if id == teamID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return nil
}

func cloneTeam(t team.Team) team.Team {
	copied := t
	copied.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	return copied
}
