package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sportarena/api/internal/domain/auction"
	"github.com/sportarena/api/internal/domain/player"
	"github.com/sportarena/api/internal/domain/team"
	"github.com/sportarena/api/internal/platform/logging"
)

// AuctionService is the single global auction engine. All transitions are
// read-modify-write against the one shared round, so every public method
// serializes through mu: concurrent bids cannot race the highest-amount
// check, concurrent starts cannot both observe an idle engine, and a bid
// arriving during finalize waits until the round is already cleared and is
// then rejected by the no-active-round precondition.
type AuctionService struct {
	mu    sync.Mutex
	round *auction.Round

	players  player.Repository
	teams    team.Repository
	ledger   auction.Ledger
	logger   *logging.Logger
	now      func() time.Time
	newBidID func() string

	subMu   sync.Mutex
	subs    map[int]chan auction.Snapshot
	nextSub int
}

func NewAuctionService(
	players player.Repository,
	teams team.Repository,
	ledger auction.Ledger,
	logger *logging.Logger,
) *AuctionService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AuctionService{
		players:  players,
		teams:    teams,
		ledger:   ledger,
		logger:   logger,
		now:      time.Now,
		newBidID: func() string { return uuid.NewString() },
		subs:     make(map[int]chan auction.Snapshot),
	}
}

// Status returns a copy of the current round state. Polling this at a short
// interval is the baseline notification channel; staleness is bounded by the
// caller's poll interval.
func (s *AuctionService) Status(ctx context.Context) auction.Snapshot {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.Status")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Start opens a round for the given player. Valid only while the engine is
// idle; a second start while a round runs is a conflict, never queued.
func (s *AuctionService) Start(ctx context.Context, playerID, actor string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Start")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if item.Sold() {
		return player.Player{}, fmt.Errorf("%w: player=%s team=%s", auction.ErrPlayerSold, playerID, item.TeamID)
	}
	if s.round != nil {
		return player.Player{}, fmt.Errorf("%w: player=%s is up", auction.ErrRoundInProgress, s.round.Player.ID)
	}

	s.round = &auction.Round{
		Player:    item,
		Bids:      []auction.Bid{},
		StartedAt: s.now().UTC(),
		StartedBy: actor,
	}

	s.logger.InfoContext(ctx, "auction round started",
		"player_id", item.ID,
		"base_price", item.BasePrice,
		"actor", actor,
	)
	s.broadcast(s.snapshotLocked())

	return item, nil
}

// PlaceBid appends a bid to the running round. The amount must be strictly
// above the current highest (the base price while no bids exist) and within
// the team's settled budget headroom; final affordability is enforced again
// at settlement.
func (s *AuctionService) PlaceBid(ctx context.Context, teamID string, amount int64, actor string) (auction.Bid, []auction.Bid, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.PlaceBid")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return auction.Bid{}, nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if amount <= 0 {
		return auction.Bid{}, nil, fmt.Errorf("%w: bid amount must be greater than zero", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return auction.Bid{}, nil, auction.ErrNoActiveRound
	}

	bidder, exists, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return auction.Bid{}, nil, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return auction.Bid{}, nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if !bidder.Active {
		return auction.Bid{}, nil, fmt.Errorf("%w: team=%s", auction.ErrTeamInactive, teamID)
	}
	if amount > bidder.Remaining() {
		return auction.Bid{}, nil, fmt.Errorf("%w: available=%d", auction.ErrBudgetExceeded, bidder.Remaining())
	}

	highest := s.round.HighestAmount()
	if amount <= highest {
		return auction.Bid{}, nil, fmt.Errorf("%w: current highest is %d", auction.ErrBidTooLow, highest)
	}

	bid := auction.Bid{
		ID:       s.newBidID(),
		TeamID:   bidder.ID,
		TeamName: bidder.Name,
		Amount:   amount,
		PlacedAt: s.now().UTC(),
	}
	s.round.Bids = append(s.round.Bids, bid)

	s.logger.InfoContext(ctx, "bid placed",
		"player_id", s.round.Player.ID,
		"team_id", bidder.ID,
		"amount", amount,
		"actor", actor,
	)
	s.broadcast(s.snapshotLocked())

	all := make([]auction.Bid, len(s.round.Bids))
	copy(all, s.round.Bids)

	return bid, all, nil
}

// Finalize closes the running round. With no bids the player stays unsold and
// no record changes. With bids, the winner is settled through the ledger as
// one atomic unit; the round is cleared in the same critical section, so a
// retried finalize observes an idle engine and gets a conflict instead of a
// double charge. A failed settlement keeps the round running.
func (s *AuctionService) Finalize(ctx context.Context, actor string) (auction.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Finalize")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return auction.Outcome{}, auction.ErrNoActiveRound
	}

	round := s.round
	winner, hasBids := round.WinningBid()
	if !hasBids {
		s.round = nil
		s.logger.InfoContext(ctx, "auction round finalized unsold",
			"player_id", round.Player.ID,
			"actor", actor,
		)
		s.broadcast(s.snapshotLocked())
		return auction.Outcome{Sold: false, Player: round.Player}, nil
	}

	// Clear the round before touching records; the ledger failure path
	// restores it below, still inside the same critical section.
	s.round = nil

	sale := auction.Sale{
		PlayerID: round.Player.ID,
		TeamID:   winner.TeamID,
		Price:    winner.Amount,
	}
	if err := s.ledger.SettleSale(ctx, sale); err != nil {
		s.round = round
		s.logger.ErrorContext(ctx, "auction settlement failed",
			"player_id", round.Player.ID,
			"team_id", winner.TeamID,
			"amount", winner.Amount,
			"error", err,
		)
		return auction.Outcome{}, fmt.Errorf("settle sale: %w", err)
	}

	sold := round.Player
	sold.TeamID = winner.TeamID
	sold.SoldPrice = winner.Amount

	s.logger.InfoContext(ctx, "auction round finalized sold",
		"player_id", sold.ID,
		"team_id", winner.TeamID,
		"amount", winner.Amount,
		"bids", len(round.Bids),
		"actor", actor,
	)
	s.broadcast(s.snapshotLocked())

	return auction.Outcome{Sold: true, Player: sold, WinningBid: winner}, nil
}

// Stop aborts the running round without a sale. No player or team record
// changes.
func (s *AuctionService) Stop(ctx context.Context, actor string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Stop")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return auction.ErrNoActiveRound
	}

	playerID := s.round.Player.ID
	s.round = nil

	s.logger.InfoContext(ctx, "auction round stopped",
		"player_id", playerID,
		"actor", actor,
	)
	s.broadcast(s.snapshotLocked())

	return nil
}

// Subscribe registers a push channel receiving a snapshot on every state
// transition. Slow subscribers miss intermediate snapshots rather than block
// the engine; the returned cancel must be called when the client goes away.
func (s *AuctionService) Subscribe() (<-chan auction.Snapshot, func()) {
	ch := make(chan auction.Snapshot, 8)

	s.subMu.Lock()
	token := s.nextSub
	s.nextSub++
	s.subs[token] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if _, ok := s.subs[token]; ok {
			delete(s.subs, token)
			close(ch)
		}
		s.subMu.Unlock()
	}

	return ch, cancel
}

func (s *AuctionService) snapshotLocked() auction.Snapshot {
	if s.round == nil {
		return auction.Snapshot{Active: false, Bids: []auction.Bid{}}
	}
	return s.round.Snapshot()
}

func (s *AuctionService) broadcast(snap auction.Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
