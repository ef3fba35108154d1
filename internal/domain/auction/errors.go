package auction

import "errors"

// Rule errors returned by engine transitions. Rejected transitions never
// change state.
var (
	ErrNoActiveRound   = errors.New("no active auction")
	ErrRoundInProgress = errors.New("an auction round is already active")
	ErrPlayerSold      = errors.New("player already sold")
	ErrTeamInactive    = errors.New("team is not active")
	ErrBidTooLow       = errors.New("bid must be strictly above the current highest")
	ErrBudgetExceeded  = errors.New("insufficient budget")
)
