package auction

import "context"

// Ledger applies a settlement to durable player/team records. Implementations
// must be all-or-nothing: player.TeamID, player.SoldPrice, team.Spent and
// team.PlayerIDs change together or not at all, and the budget ceiling is
// re-checked inside the same unit. A failed settlement returns
// ErrBudgetExceeded or ErrPlayerSold with no partial mutation.
type Ledger interface {
	SettleSale(ctx context.Context, sale Sale) error
}
