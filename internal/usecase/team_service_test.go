package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/sportarena/api/internal/infrastructure/repository/memory"
)

func newTeamFixture(t *testing.T) *TeamService {
	t.Helper()

	service := NewTeamService(memory.NewTeamRepository(nil), &seqIDGenerator{prefix: "team"}, nil)
	service.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	return service
}

func TestTeamService_CreateTeam(t *testing.T) {
	service := newTeamFixture(t)
	ctx := t.Context()

	created, err := service.CreateTeam(ctx, CreateTeamInput{
		Name:    "  Falcons  ",
		Owner:   "Ravi",
		Contact: "ravi@example.com",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Name != "Falcons" {
		t.Fatalf("name must be trimmed: %q", created.Name)
	}
	if created.Budget != defaultTeamBudget {
		t.Fatalf("expected default budget %d, got %d", defaultTeamBudget, created.Budget)
	}
	if !created.Active || created.Spent != 0 {
		t.Fatalf("new team must be active with nothing spent: %+v", created)
	}

	if _, err := service.CreateTeam(ctx, CreateTeamInput{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := service.CreateTeam(ctx, CreateTeamInput{Name: "X", Budget: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative budget, got %v", err)
	}
}

func TestTeamService_UpdateTeam(t *testing.T) {
	service := newTeamFixture(t)
	ctx := t.Context()

	created, err := service.CreateTeam(ctx, CreateTeamInput{Name: "Falcons", Budget: 12000})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	newName := "Fighting Falcons"
	inactive := false
	updated, err := service.UpdateTeam(ctx, created.ID, UpdateTeamInput{
		Name:   &newName,
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Name != "Fighting Falcons" || updated.Active {
		t.Fatalf("unexpected updated team: %+v", updated)
	}
	if updated.Budget != 12000 {
		t.Fatalf("untouched fields must survive the patch: %+v", updated)
	}

	if _, err := service.UpdateTeam(ctx, "team-missing", UpdateTeamInput{Name: &newName}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_DeleteTeam(t *testing.T) {
	service := newTeamFixture(t)
	ctx := t.Context()

	created, err := service.CreateTeam(ctx, CreateTeamInput{Name: "Falcons"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if err := service.DeleteTeam(ctx, created.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if _, err := service.GetTeam(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
