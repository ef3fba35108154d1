package usecase

import (
	"testing"
	"time"

	"github.com/sportarena/api/internal/domain/fantasy"
	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/prediction"
	"github.com/sportarena/api/internal/infrastructure/repository/memory"
	"github.com/sportarena/api/internal/platform/cache"
)

func newLeaderboardFixture(t *testing.T) (*LeaderboardService, *memory.MatchRepository, *memory.PredictionRepository) {
	t.Helper()

	predictionRepo := memory.NewPredictionRepository()
	fantasyRepo := memory.NewFantasyRepository()
	matchRepo := memory.NewMatchRepository()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())

	service := NewLeaderboardService(
		predictionRepo, fantasyRepo, matchRepo, teamRepo, cache.NewStore(time.Minute), nil)

	return service, matchRepo, predictionRepo
}

func seedPrediction(t *testing.T, repo *memory.PredictionRepository, id, userID string, points int, locked bool) {
	t.Helper()

	err := repo.Create(t.Context(), prediction.Prediction{
		ID:                id,
		UserID:            userID,
		MatchID:           "m1",
		PredictedWinnerID: "team-falcons",
		Points:            points,
		Locked:            locked,
		CreatedAt:         time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed prediction %s: %v", id, err)
	}
}

func TestLeaderboardService_PredictionLeaderboard(t *testing.T) {
	service, _, predictionRepo := newLeaderboardFixture(t)
	ctx := t.Context()

	seedPrediction(t, predictionRepo, "p1", "user-a", 15, true)
	seedPrediction(t, predictionRepo, "p2", "user-b", 10, true)
	// Open predictions count as entries but carry no points yet.
	seedPrediction(t, predictionRepo, "p3", "user-b", 99, false)

	board, err := service.PredictionLeaderboard(ctx)
	if err != nil {
		t.Fatalf("prediction leaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("unexpected standings count: got=%d want=2", len(board))
	}
	if board[0].UserID != "user-a" || board[0].Points != 15 {
		t.Fatalf("unexpected leader: %+v", board[0])
	}
	if board[1].UserID != "user-b" || board[1].Points != 10 || board[1].Predictions != 2 {
		t.Fatalf("unexpected runner-up: %+v", board[1])
	}
}

func TestLeaderboardService_TeamLeaderboard(t *testing.T) {
	service, matchRepo, _ := newLeaderboardFixture(t)
	ctx := t.Context()

	home, away := 2, 1
	completed := match.Match{
		ID:           "m1",
		SportID:      memory.SportIDCricket,
		HomeTeamID:   "team-falcons",
		AwayTeamID:   "team-titans",
		Status:       match.StatusCompleted,
		HomeScore:    &home,
		AwayScore:    &away,
		WinnerTeamID: "team-falcons",
		CreatedAt:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := matchRepo.Create(ctx, completed); err != nil {
		t.Fatalf("seed completed match: %v", err)
	}
	scheduled := match.Match{
		ID:         "m2",
		SportID:    memory.SportIDCricket,
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-chargers",
		Status:     match.StatusScheduled,
		CreatedAt:  time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
	if err := matchRepo.Create(ctx, scheduled); err != nil {
		t.Fatalf("seed scheduled match: %v", err)
	}

	board, err := service.TeamLeaderboard(ctx)
	if err != nil {
		t.Fatalf("team leaderboard: %v", err)
	}
	if len(board) != 4 {
		t.Fatalf("all franchises must be listed: got=%d want=4", len(board))
	}
	if board[0].TeamID != "team-falcons" {
		t.Fatalf("unexpected table leader: %+v", board[0])
	}
	if board[0].Played != 1 || board[0].Wins != 1 || board[0].Points != teamPointsPerWin {
		t.Fatalf("scheduled matches must not count: %+v", board[0])
	}
	for _, standing := range board[1:] {
		if standing.Wins != 0 || standing.Points != 0 {
			t.Fatalf("non-winners must have zero points: %+v", standing)
		}
	}
}

func TestLeaderboardService_OverviewAndInvalidate(t *testing.T) {
	predictionRepo := memory.NewPredictionRepository()
	fantasyRepo := memory.NewFantasyRepository()
	matchRepo := memory.NewMatchRepository()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())

	service := NewLeaderboardService(
		predictionRepo, fantasyRepo, matchRepo, teamRepo, cache.NewStore(time.Minute), nil)
	ctx := t.Context()

	entry := fantasy.Entry{
		ID:        "entry-1",
		UserID:    "user-a",
		SportID:   memory.SportIDBadminton,
		Name:      "Smash Bros",
		PlayerIDs: []string{"pl-anand"},
		CaptainID: "pl-anand",
		Points:    12,
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := fantasyRepo.Create(ctx, entry); err != nil {
		t.Fatalf("seed fantasy entry: %v", err)
	}

	overview, err := service.LeaderboardOverview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Fantasy) != 1 || overview.Fantasy[0].Points != 12 {
		t.Fatalf("unexpected fantasy board: %+v", overview.Fantasy)
	}
	if len(overview.Teams) != 4 {
		t.Fatalf("unexpected team board: %+v", overview.Teams)
	}

	// A cached table hides later writes until invalidated.
	entry.Points = 40
	if err := fantasyRepo.Update(ctx, entry); err != nil {
		t.Fatalf("update fantasy entry: %v", err)
	}

	cached, err := service.FantasyLeaderboard(ctx)
	if err != nil {
		t.Fatalf("cached fantasy leaderboard: %v", err)
	}
	if cached[0].Points != 12 {
		t.Fatalf("expected cached points 12, got %d", cached[0].Points)
	}

	service.Invalidate(ctx)

	fresh, err := service.FantasyLeaderboard(ctx)
	if err != nil {
		t.Fatalf("fresh fantasy leaderboard: %v", err)
	}
	if fresh[0].Points != 40 {
		t.Fatalf("expected recomputed points 40, got %d", fresh[0].Points)
	}
}
