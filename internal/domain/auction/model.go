package auction

import (
	"time"

	"github.com/sportarena/api/internal/domain/player"
)

// Bid is one offer inside a round. Bids are append-only; a bid is never
// edited or removed once accepted.
type Bid struct {
	ID       string
	TeamID   string
	TeamName string
	Amount   int64
	PlacedAt time.Time
}

// Round is the single global auction session for exactly one player. It is
// owned exclusively by the engine; everyone else sees Snapshot copies.
type Round struct {
	Player    player.Player
	Bids      []Bid
	StartedAt time.Time
	StartedBy string
}

// HighestAmount is the amount a new bid must strictly exceed: the top bid so
// far, or the player's base price while the round has no bids.
func (r *Round) HighestAmount() int64 {
	highest := r.Player.BasePrice
	for _, b := range r.Bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}

	return highest
}

// WinningBid picks the bid with the maximum amount. Amount ties break to the
// earliest arrival; the strict-increase rule makes ties unreachable through
// the engine, but the rule stays deterministic regardless.
func (r *Round) WinningBid() (Bid, bool) {
	if len(r.Bids) == 0 {
		return Bid{}, false
	}

	winner := r.Bids[0]
	for _, b := range r.Bids[1:] {
		if b.Amount > winner.Amount {
			winner = b
		}
	}

	return winner, true
}

// Snapshot is an immutable copy of round state handed to transports. A nil
// player pointer means no round is active.
type Snapshot struct {
	Active    bool
	Player    *player.Player
	Bids      []Bid
	StartedAt time.Time
}

// Snapshot copies the round for readers outside the engine lock.
func (r *Round) Snapshot() Snapshot {
	p := r.Player
	bids := make([]Bid, len(r.Bids))
	copy(bids, r.Bids)

	return Snapshot{
		Active:    true,
		Player:    &p,
		Bids:      bids,
		StartedAt: r.StartedAt,
	}
}

// Sale is the settlement order produced by finalize: the four record
// mutations a Ledger must apply as one atomic unit.
type Sale struct {
	PlayerID string
	TeamID   string
	Price    int64
}

// Outcome is the result of a finalized round.
type Outcome struct {
	Sold       bool
	Player     player.Player
	WinningBid Bid
}
