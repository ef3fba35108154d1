package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/auction"
)

const (
	lockPlayerForSale = `SELECT team_id FROM players WHERE id = $1 FOR UPDATE`
	lockTeamForSale   = `SELECT budget, spent, active FROM teams WHERE id = $1 FOR UPDATE`
	sellPlayer        = `UPDATE players SET team_id = $2, sold_price = $3
		WHERE id = $1 AND team_id = ''`
	chargeTeam = `UPDATE teams SET spent = spent + $2, player_ids = array_append(player_ids, $3)
		WHERE id = $1 AND spent + $2 <= budget`
)

// Ledger settles auction sales in a single transaction. Both rows are locked
// up front and the conditional updates re-check the sold and budget
// invariants, so a sale either lands on player and team together or not at
// all.
type Ledger struct {
	db *sqlx.DB
}

func NewLedger(db *sqlx.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) SettleSale(ctx context.Context, sale auction.Sale) error {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settle transaction: %w", err)
	}
	defer tx.Rollback()

	var currentTeamID string
	if err := tx.GetContext(ctx, &currentTeamID, lockPlayerForSale, sale.PlayerID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("player %s not found", sale.PlayerID)
		}
		return fmt.Errorf("lock player: %w", err)
	}
	if currentTeamID != "" {
		return fmt.Errorf("%w: player=%s", auction.ErrPlayerSold, sale.PlayerID)
	}

	var buyer struct {
		Budget int64 `db:"budget"`
		Spent  int64 `db:"spent"`
		Active bool  `db:"active"`
	}
	if err := tx.GetContext(ctx, &buyer, lockTeamForSale, sale.TeamID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("team %s not found", sale.TeamID)
		}
		return fmt.Errorf("lock team: %w", err)
	}
	if !buyer.Active {
		return fmt.Errorf("%w: team=%s", auction.ErrTeamInactive, sale.TeamID)
	}
	if buyer.Spent+sale.Price > buyer.Budget {
		return fmt.Errorf("%w: spent=%d price=%d budget=%d",
			auction.ErrBudgetExceeded, buyer.Spent, sale.Price, buyer.Budget)
	}

	result, err := tx.ExecContext(ctx, sellPlayer, sale.PlayerID, sale.TeamID, sale.Price)
	if err != nil {
		return fmt.Errorf("sell player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: player=%s", auction.ErrPlayerSold, sale.PlayerID)
	}

	result, err = tx.ExecContext(ctx, chargeTeam, sale.TeamID, sale.Price, sale.PlayerID)
	if err != nil {
		return fmt.Errorf("charge team: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: team=%s price=%d", auction.ErrBudgetExceeded, sale.TeamID, sale.Price)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settle transaction: %w", err)
	}

	return nil
}
