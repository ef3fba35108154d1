package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sportarena/api/internal/domain/auction"
)

// Ledger settles auction sales against the in-memory repositories. All checks
// run before the first mutation under one lock; the repositories themselves
// never fail, so the four settlement writes are all-or-nothing.
type Ledger struct {
	mu      sync.Mutex
	players *PlayerRepository
	teams   *TeamRepository
}

func NewLedger(players *PlayerRepository, teams *TeamRepository) *Ledger {
	return &Ledger{players: players, teams: teams}
}

func (l *Ledger) SettleSale(ctx context.Context, sale auction.Sale) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, exists, err := l.players.GetByID(ctx, sale.PlayerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("player %s not found", sale.PlayerID)
	}
	if item.Sold() {
		return fmt.Errorf("%w: player=%s", auction.ErrPlayerSold, sale.PlayerID)
	}

	buyer, exists, err := l.teams.GetByID(ctx, sale.TeamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("team %s not found", sale.TeamID)
	}
	if buyer.Spent+sale.Price > buyer.Budget {
		return fmt.Errorf("%w: spent=%d price=%d budget=%d",
			auction.ErrBudgetExceeded, buyer.Spent, sale.Price, buyer.Budget)
	}

	l.players.applySale(sale.PlayerID, sale.TeamID, sale.Price)
	l.teams.applySale(sale.TeamID, sale.PlayerID, sale.Price)

	return nil
}
