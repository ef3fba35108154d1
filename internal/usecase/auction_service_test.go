package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sportarena/api/internal/domain/auction"
	"github.com/sportarena/api/internal/infrastructure/repository/memory"
)

type failingLedger struct {
	err error
}

func (l failingLedger) SettleSale(_ context.Context, _ auction.Sale) error {
	return l.err
}

func newAuctionFixture(t *testing.T) (*AuctionService, *memory.PlayerRepository, *memory.TeamRepository) {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	service := NewAuctionService(playerRepo, teamRepo, memory.NewLedger(playerRepo, teamRepo), nil)

	bidSeq := 0
	service.newBidID = func() string {
		bidSeq++
		return fmt.Sprintf("bid-%03d", bidSeq)
	}
	service.now = func() time.Time {
		return time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	}

	return service, playerRepo, teamRepo
}

func TestAuctionService_FullRound(t *testing.T) {
	service, playerRepo, teamRepo := newAuctionFixture(t)
	ctx := t.Context()

	started, err := service.Start(ctx, "pl-anand", "admin")
	if err != nil {
		t.Fatalf("start round: %v", err)
	}
	if started.BasePrice != 1000 {
		t.Fatalf("unexpected base price: got=%d want=1000", started.BasePrice)
	}

	// A bid equal to the base price is below the strict threshold.
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1000, "falcons"); !errors.Is(err, auction.ErrBidTooLow) {
		t.Fatalf("expected ErrBidTooLow for bid at base price, got %v", err)
	}

	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1100, "falcons"); err != nil {
		t.Fatalf("place opening bid: %v", err)
	}

	// Matching the current highest must also be rejected.
	if _, _, err := service.PlaceBid(ctx, "team-titans", 1100, "titans"); !errors.Is(err, auction.ErrBidTooLow) {
		t.Fatalf("expected ErrBidTooLow for matching bid, got %v", err)
	}

	bid, all, err := service.PlaceBid(ctx, "team-titans", 1500, "titans")
	if err != nil {
		t.Fatalf("place winning bid: %v", err)
	}
	if bid.TeamID != "team-titans" || bid.Amount != 1500 {
		t.Fatalf("unexpected accepted bid: %+v", bid)
	}
	if len(all) != 2 {
		t.Fatalf("unexpected bid count: got=%d want=2", len(all))
	}

	outcome, err := service.Finalize(ctx, "admin")
	if err != nil {
		t.Fatalf("finalize round: %v", err)
	}
	if !outcome.Sold {
		t.Fatalf("expected a sale")
	}
	if outcome.WinningBid.TeamID != "team-titans" || outcome.WinningBid.Amount != 1500 {
		t.Fatalf("unexpected winning bid: %+v", outcome.WinningBid)
	}

	sold, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if sold.TeamID != "team-titans" || sold.SoldPrice != 1500 {
		t.Fatalf("player record not settled: team=%s price=%d", sold.TeamID, sold.SoldPrice)
	}

	buyer, _, err := teamRepo.GetByID(ctx, "team-titans")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if buyer.Spent != 1500 {
		t.Fatalf("unexpected spent: got=%d want=1500", buyer.Spent)
	}
	if buyer.Remaining() != 8500 {
		t.Fatalf("unexpected remaining: got=%d want=8500", buyer.Remaining())
	}
	if len(buyer.PlayerIDs) != 1 || buyer.PlayerIDs[0] != "pl-anand" {
		t.Fatalf("player not on roster: %v", buyer.PlayerIDs)
	}

	loser, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get losing team: %v", err)
	}
	if loser.Spent != 0 || len(loser.PlayerIDs) != 0 {
		t.Fatalf("losing team must be untouched: spent=%d roster=%v", loser.Spent, loser.PlayerIDs)
	}

	// Retrying the finalize sees an idle engine, never a second charge.
	if _, err := service.Finalize(ctx, "admin"); !errors.Is(err, auction.ErrNoActiveRound) {
		t.Fatalf("expected ErrNoActiveRound on repeat finalize, got %v", err)
	}
}

func TestAuctionService_StartPreconditions(t *testing.T) {
	service, _, _ := newAuctionFixture(t)
	ctx := t.Context()

	if _, err := service.Start(ctx, "pl-missing", "admin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, err := service.Start(ctx, "pl-vikram", "admin"); !errors.Is(err, auction.ErrRoundInProgress) {
		t.Fatalf("expected ErrRoundInProgress, got %v", err)
	}

	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1200, "falcons"); err != nil {
		t.Fatalf("place bid: %v", err)
	}
	if _, err := service.Finalize(ctx, "admin"); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	// The settled player can never be auctioned again.
	if _, err := service.Start(ctx, "pl-anand", "admin"); !errors.Is(err, auction.ErrPlayerSold) {
		t.Fatalf("expected ErrPlayerSold, got %v", err)
	}
}

func TestAuctionService_PlaceBidRejections(t *testing.T) {
	service, _, teamRepo := newAuctionFixture(t)
	ctx := t.Context()

	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1200, "falcons"); !errors.Is(err, auction.ErrNoActiveRound) {
		t.Fatalf("expected ErrNoActiveRound before start, got %v", err)
	}

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}

	if _, _, err := service.PlaceBid(ctx, "team-ghost", 1200, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 0, "falcons"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero bid, got %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 10001, "falcons"); !errors.Is(err, auction.ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded above full budget, got %v", err)
	}

	benched, _, err := teamRepo.GetByID(ctx, "team-royals")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	benched.Active = false
	if err := teamRepo.Update(ctx, benched); err != nil {
		t.Fatalf("deactivate team: %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-royals", 1200, "royals"); !errors.Is(err, auction.ErrTeamInactive) {
		t.Fatalf("expected ErrTeamInactive, got %v", err)
	}

	snap := service.Status(ctx)
	if len(snap.Bids) != 0 {
		t.Fatalf("rejected bids must not be recorded: %v", snap.Bids)
	}
}

func TestAuctionService_FinalizeWithoutBids(t *testing.T) {
	service, playerRepo, _ := newAuctionFixture(t)
	ctx := t.Context()

	if _, err := service.Start(ctx, "pl-rahul", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}

	outcome, err := service.Finalize(ctx, "admin")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if outcome.Sold {
		t.Fatalf("expected unsold outcome")
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-rahul")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.Sold() || item.SoldPrice != 0 {
		t.Fatalf("unsold player must be untouched: %+v", item)
	}

	// The player stays eligible for a later round.
	if _, err := service.Start(ctx, "pl-rahul", "admin"); err != nil {
		t.Fatalf("restart for unsold player: %v", err)
	}
}

func TestAuctionService_StopAbortsWithoutSale(t *testing.T) {
	service, playerRepo, teamRepo := newAuctionFixture(t)
	ctx := t.Context()

	if err := service.Stop(ctx, "admin"); !errors.Is(err, auction.ErrNoActiveRound) {
		t.Fatalf("expected ErrNoActiveRound, got %v", err)
	}

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1200, "falcons"); err != nil {
		t.Fatalf("place bid: %v", err)
	}
	if err := service.Stop(ctx, "admin"); err != nil {
		t.Fatalf("stop round: %v", err)
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.Sold() {
		t.Fatalf("stop must not sell the player")
	}

	bidder, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if bidder.Spent != 0 {
		t.Fatalf("stop must not charge the bidder: spent=%d", bidder.Spent)
	}

	if service.Status(ctx).Active {
		t.Fatalf("engine must be idle after stop")
	}
}

func TestAuctionService_FailedSettlementKeepsRound(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	ledgerErr := errors.New("store unavailable")
	service := NewAuctionService(playerRepo, teamRepo, failingLedger{err: ledgerErr}, nil)
	ctx := t.Context()

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1200, "falcons"); err != nil {
		t.Fatalf("place bid: %v", err)
	}

	if _, err := service.Finalize(ctx, "admin"); !errors.Is(err, ledgerErr) {
		t.Fatalf("expected ledger error, got %v", err)
	}

	// The round survives the failure with its bid history intact.
	snap := service.Status(ctx)
	if !snap.Active {
		t.Fatalf("round must stay active after failed settlement")
	}
	if len(snap.Bids) != 1 || snap.Bids[0].Amount != 1200 {
		t.Fatalf("bid history lost: %v", snap.Bids)
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.Sold() {
		t.Fatalf("failed settlement must not mutate the player")
	}

	bidder, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if bidder.Spent != 0 {
		t.Fatalf("failed settlement must not charge the bidder: spent=%d", bidder.Spent)
	}
}

func TestAuctionService_ConcurrentStartSingleWinner(t *testing.T) {
	service, _, _ := newAuctionFixture(t)
	ctx := t.Context()

	const attempts = 16

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Start(ctx, "pl-anand", "admin")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, auction.ErrRoundInProgress):
		default:
			t.Fatalf("unexpected start error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("exactly one start must win: got=%d", succeeded)
	}
}

func TestAuctionService_ConcurrentBidsStayOrdered(t *testing.T) {
	service, _, _ := newAuctionFixture(t)
	ctx := t.Context()

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}

	teams := []string{"team-falcons", "team-titans", "team-chargers", "team-royals"}

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func(amount int64, teamID string) {
			defer wg.Done()
			_, _, err := service.PlaceBid(ctx, teamID, amount, teamID)
			if err != nil && !errors.Is(err, auction.ErrBidTooLow) {
				t.Errorf("unexpected bid error: %v", err)
			}
		}(int64(1001+i*25), teams[i%len(teams)])
	}
	wg.Wait()

	snap := service.Status(ctx)
	if len(snap.Bids) == 0 {
		t.Fatalf("at least one bid must land")
	}
	for i := 1; i < len(snap.Bids); i++ {
		if snap.Bids[i].Amount <= snap.Bids[i-1].Amount {
			t.Fatalf("accepted bids must strictly increase: %d then %d",
				snap.Bids[i-1].Amount, snap.Bids[i].Amount)
		}
	}

	outcome, err := service.Finalize(ctx, "admin")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if outcome.WinningBid.Amount != snap.Bids[len(snap.Bids)-1].Amount {
		t.Fatalf("winner must be the highest accepted bid: got=%d want=%d",
			outcome.WinningBid.Amount, snap.Bids[len(snap.Bids)-1].Amount)
	}
}

func TestAuctionService_SubscribeReceivesTransitions(t *testing.T) {
	service, _, _ := newAuctionFixture(t)
	ctx := t.Context()

	updates, cancel := service.Subscribe()
	defer cancel()

	if _, err := service.Start(ctx, "pl-anand", "admin"); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, _, err := service.PlaceBid(ctx, "team-falcons", 1200, "falcons"); err != nil {
		t.Fatalf("place bid: %v", err)
	}
	if _, err := service.Finalize(ctx, "admin"); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	var snaps []auction.Snapshot
	for range 3 {
		select {
		case snap := <-updates:
			snaps = append(snaps, snap)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for snapshot %d", len(snaps))
		}
	}

	if !snaps[0].Active || snaps[0].Player == nil || snaps[0].Player.ID != "pl-anand" {
		t.Fatalf("unexpected start snapshot: %+v", snaps[0])
	}
	if len(snaps[1].Bids) != 1 {
		t.Fatalf("bid snapshot must carry the bid: %+v", snaps[1])
	}
	if snaps[2].Active {
		t.Fatalf("finalize snapshot must be idle: %+v", snaps[2])
	}
}
