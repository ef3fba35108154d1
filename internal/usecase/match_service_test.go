package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/infrastructure/repository/memory"
)

type recordingScorer struct {
	calls []match.Match
	err   error
}

func (s *recordingScorer) ScoreMatch(_ context.Context, completed match.Match) (int, error) {
	s.calls = append(s.calls, completed)
	return len(s.calls), s.err
}

func newMatchFixture(t *testing.T, scorer ResultScorer) (*MatchService, *memory.MatchRepository) {
	t.Helper()

	matchRepo := memory.NewMatchRepository()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	sportRepo := memory.NewSportRepository(memory.SeedSports())

	service := NewMatchService(matchRepo, teamRepo, sportRepo, scorer, &seqIDGenerator{prefix: "match"}, nil)
	service.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	return service, matchRepo
}

func TestMatchService_CreateMatch(t *testing.T) {
	service, _ := newMatchFixture(t, nil)
	ctx := t.Context()

	created, err := service.CreateMatch(ctx, CreateMatchInput{
		SportID:    memory.SportIDBadminton,
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-titans",
		KickoffAt:  time.Date(2026, 3, 8, 17, 0, 0, 0, time.UTC),
		Venue:      "Hall A",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.Status != match.StatusScheduled {
		t.Fatalf("new match must be scheduled, got %s", created.Status)
	}

	_, err = service.CreateMatch(ctx, CreateMatchInput{
		SportID:    "sport-unknown",
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-titans",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown sport, got %v", err)
	}

	_, err = service.CreateMatch(ctx, CreateMatchInput{
		SportID:    memory.SportIDBadminton,
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-falcons",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for same team twice, got %v", err)
	}
}

func TestMatchService_RecordResult(t *testing.T) {
	scorer := &recordingScorer{}
	service, matchRepo := newMatchFixture(t, scorer)
	ctx := t.Context()

	created, err := service.CreateMatch(ctx, CreateMatchInput{
		SportID:    memory.SportIDCricket,
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-titans",
		KickoffAt:  time.Date(2026, 3, 8, 17, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	_, err = service.RecordResult(ctx, created.ID, RecordResultInput{
		HomeScore:    2,
		AwayScore:    1,
		WinnerTeamID: "team-chargers",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for outside winner, got %v", err)
	}

	completed, err := service.RecordResult(ctx, created.ID, RecordResultInput{
		HomeScore:    2,
		AwayScore:    1,
		WinnerTeamID: "team-falcons",
		BestPlayerID: "pl-anand",
	})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	if completed.Status != match.StatusCompleted {
		t.Fatalf("match must be completed, got %s", completed.Status)
	}
	if completed.HomeScore == nil || *completed.HomeScore != 2 {
		t.Fatalf("home score not recorded: %+v", completed.HomeScore)
	}
	if len(scorer.calls) != 1 || scorer.calls[0].ID != created.ID {
		t.Fatalf("scorer must settle the completed match: %+v", scorer.calls)
	}

	stored, _, err := matchRepo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.WinnerTeamID != "team-falcons" {
		t.Fatalf("winner not persisted: %s", stored.WinnerTeamID)
	}

	// Results are written once.
	_, err = service.RecordResult(ctx, created.ID, RecordResultInput{
		HomeScore:    3,
		AwayScore:    0,
		WinnerTeamID: "team-falcons",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on repeat result, got %v", err)
	}
}

func TestMatchService_RecordResultScorerFailureKeepsResult(t *testing.T) {
	scorer := &recordingScorer{err: errors.New("settlement backend down")}
	service, matchRepo := newMatchFixture(t, scorer)
	ctx := t.Context()

	created, err := service.CreateMatch(ctx, CreateMatchInput{
		SportID:    memory.SportIDBowling,
		HomeTeamID: "team-falcons",
		AwayTeamID: "team-royals",
		KickoffAt:  time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	if _, err := service.RecordResult(ctx, created.ID, RecordResultInput{
		HomeScore:    1,
		AwayScore:    2,
		WinnerTeamID: "team-royals",
	}); err != nil {
		t.Fatalf("record result must survive scorer failure: %v", err)
	}

	stored, _, err := matchRepo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.Status != match.StatusCompleted {
		t.Fatalf("result must be recorded despite scorer failure, got %s", stored.Status)
	}
}
