package usecase

import (
	"errors"
	"testing"

	"github.com/sportarena/api/internal/infrastructure/repository/memory"
)

func TestSportService_Bootstrap(t *testing.T) {
	service := NewSportService(memory.NewSportRepository(nil), &seqIDGenerator{prefix: "sport"}, nil)
	ctx := t.Context()

	seeded, err := service.Bootstrap(ctx, memory.SeedSports())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !seeded {
		t.Fatalf("first bootstrap must seed")
	}

	items, err := service.ListSports(ctx)
	if err != nil {
		t.Fatalf("list sports: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("unexpected sport count: got=%d want=5", len(items))
	}

	// Second call is a no-op, not a duplicate seed.
	seeded, err = service.Bootstrap(ctx, memory.SeedSports())
	if err != nil {
		t.Fatalf("repeat bootstrap: %v", err)
	}
	if seeded {
		t.Fatalf("repeat bootstrap must not reseed")
	}
}

func TestSportService_CreateAndDelete(t *testing.T) {
	service := NewSportService(memory.NewSportRepository(nil), &seqIDGenerator{prefix: "sport"}, nil)
	ctx := t.Context()

	created, err := service.CreateSport(ctx, CreateSportInput{
		Name:          "Table Tennis",
		Kind:          "team",
		Gender:        "mixed",
		MaxPlayers:    2,
		ScoringMethod: "points",
	})
	if err != nil {
		t.Fatalf("create sport: %v", err)
	}
	if created.Name != "Table Tennis" {
		t.Fatalf("unexpected sport: %+v", created)
	}

	if _, err := service.CreateSport(ctx, CreateSportInput{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}

	if err := service.DeleteSport(ctx, created.ID); err != nil {
		t.Fatalf("delete sport: %v", err)
	}
	if err := service.DeleteSport(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeat delete, got %v", err)
	}
}
