package memory

import (
	"errors"
	"testing"

	"github.com/sportarena/api/internal/domain/auction"
)

func TestLedger_SettleSale(t *testing.T) {
	playerRepo := NewPlayerRepository(SeedPlayers())
	teamRepo := NewTeamRepository(SeedTeams())
	ledger := NewLedger(playerRepo, teamRepo)
	ctx := t.Context()

	err := ledger.SettleSale(ctx, auction.Sale{
		PlayerID: "pl-anand",
		TeamID:   "team-falcons",
		Price:    1500,
	})
	if err != nil {
		t.Fatalf("settle sale: %v", err)
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.TeamID != "team-falcons" || item.SoldPrice != 1500 {
		t.Fatalf("player not settled: %+v", item)
	}

	buyer, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if buyer.Spent != 1500 || len(buyer.PlayerIDs) != 1 {
		t.Fatalf("team not settled: spent=%d roster=%v", buyer.Spent, buyer.PlayerIDs)
	}
}

func TestLedger_SettleSaleRejectsDoubleSale(t *testing.T) {
	playerRepo := NewPlayerRepository(SeedPlayers())
	teamRepo := NewTeamRepository(SeedTeams())
	ledger := NewLedger(playerRepo, teamRepo)
	ctx := t.Context()

	sale := auction.Sale{PlayerID: "pl-anand", TeamID: "team-falcons", Price: 1500}
	if err := ledger.SettleSale(ctx, sale); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	sale.TeamID = "team-titans"
	if err := ledger.SettleSale(ctx, sale); !errors.Is(err, auction.ErrPlayerSold) {
		t.Fatalf("expected ErrPlayerSold, got %v", err)
	}

	other, _, err := teamRepo.GetByID(ctx, "team-titans")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if other.Spent != 0 {
		t.Fatalf("rejected sale must not charge: spent=%d", other.Spent)
	}
}

func TestLedger_SettleSaleSurvivesStaleUpdates(t *testing.T) {
	playerRepo := NewPlayerRepository(SeedPlayers())
	teamRepo := NewTeamRepository(SeedTeams())
	ledger := NewLedger(playerRepo, teamRepo)
	ctx := t.Context()

	// Snapshots read before the sale, as an admin edit in flight would hold.
	stalePlayer, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	staleTeam, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}

	sale := auction.Sale{PlayerID: "pl-anand", TeamID: "team-falcons", Price: 1500}
	if err := ledger.SettleSale(ctx, sale); err != nil {
		t.Fatalf("settle sale: %v", err)
	}

	staleTeam.Name = "Falcons United"
	if err := teamRepo.Update(ctx, staleTeam); err != nil {
		t.Fatalf("update team: %v", err)
	}
	stalePlayer.SkillRating = 9
	if err := playerRepo.Update(ctx, stalePlayer); err != nil {
		t.Fatalf("update player: %v", err)
	}

	buyer, _, err := teamRepo.GetByID(ctx, "team-falcons")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if buyer.Name != "Falcons United" {
		t.Fatalf("edit lost: %+v", buyer)
	}
	if buyer.Spent != 1500 || len(buyer.PlayerIDs) != 1 {
		t.Fatalf("stale update reverted settlement: spent=%d roster=%v", buyer.Spent, buyer.PlayerIDs)
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.SkillRating != 9 {
		t.Fatalf("edit lost: %+v", item)
	}
	if item.TeamID != "team-falcons" || item.SoldPrice != 1500 {
		t.Fatalf("stale update reverted sale fields: %+v", item)
	}
}

func TestLedger_SettleSaleEnforcesBudget(t *testing.T) {
	playerRepo := NewPlayerRepository(SeedPlayers())
	teamRepo := NewTeamRepository(SeedTeams())
	ledger := NewLedger(playerRepo, teamRepo)
	ctx := t.Context()

	err := ledger.SettleSale(ctx, auction.Sale{
		PlayerID: "pl-anand",
		TeamID:   "team-falcons",
		Price:    10001,
	})
	if !errors.Is(err, auction.ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}

	item, _, err := playerRepo.GetByID(ctx, "pl-anand")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if item.Sold() {
		t.Fatalf("rejected sale must not mutate the player: %+v", item)
	}
}
