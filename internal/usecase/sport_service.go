package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sportarena/api/internal/domain/sport"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

type CreateSportInput struct {
	Name          string
	Kind          string
	Gender        string
	MaxPlayers    int
	ScoringMethod string
}

type SportService struct {
	sports sport.Repository
	idGen  idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewSportService(sports sport.Repository, idGen idgen.Generator, logger *logging.Logger) *SportService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &SportService{
		sports: sports,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

func (s *SportService) ListSports(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.ListSports")
	defer span.End()

	items, err := s.sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	return items, nil
}

func (s *SportService) CreateSport(ctx context.Context, input CreateSportInput) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.CreateSport")
	defer span.End()

	sportID, err := s.idGen.NewID()
	if err != nil {
		return sport.Sport{}, fmt.Errorf("generate sport id: %w", err)
	}

	item := sport.Sport{
		ID:            sportID,
		Name:          strings.TrimSpace(input.Name),
		Kind:          sport.Kind(strings.TrimSpace(input.Kind)),
		Gender:        strings.TrimSpace(input.Gender),
		MaxPlayers:    input.MaxPlayers,
		ScoringMethod: strings.TrimSpace(input.ScoringMethod),
		CreatedAt:     s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.sports.Create(ctx, item); err != nil {
		return sport.Sport{}, fmt.Errorf("create sport: %w", err)
	}

	s.logger.InfoContext(ctx, "sport created", "sport_id", item.ID, "name", item.Name)

	return item, nil
}

func (s *SportService) DeleteSport(ctx context.Context, sportID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.DeleteSport")
	defer span.End()

	sportID = strings.TrimSpace(sportID)
	if sportID == "" {
		return fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	_, exists, err := s.sports.GetByID(ctx, sportID)
	if err != nil {
		return fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: sport=%s", ErrNotFound, sportID)
	}

	if err := s.sports.Delete(ctx, sportID); err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}

	return nil
}

// Bootstrap seeds the default disciplines once. Calling it again is a no-op.
func (s *SportService) Bootstrap(ctx context.Context, defaults []sport.Sport) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.Bootstrap")
	defer span.End()

	existing, err := s.sports.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list sports: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, item := range defaults {
		if err := s.sports.Create(ctx, item); err != nil {
			return false, fmt.Errorf("seed sport %s: %w", item.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "default sports seeded", "count", len(defaults))

	return true, nil
}
