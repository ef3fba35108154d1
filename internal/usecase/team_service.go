package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sportarena/api/internal/domain/team"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

const defaultTeamBudget = 10000

// CreateTeamInput is the incoming payload for franchise registration.
type CreateTeamInput struct {
	Name    string
	Owner   string
	Contact string
	Budget  int64
}

type UpdateTeamInput struct {
	Name    *string
	Owner   *string
	Contact *string
	Budget  *int64
	Active  *bool
}

type TeamService struct {
	teams  team.Repository
	idGen  idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewTeamService(teams team.Repository, idGen idgen.Generator, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &TeamService{
		teams:  teams,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.Budget < 0 {
		return team.Team{}, fmt.Errorf("%w: team budget cannot be negative", ErrInvalidInput)
	}
	if input.Budget == 0 {
		input.Budget = defaultTeamBudget
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        teamID,
		Name:      input.Name,
		Owner:     strings.TrimSpace(input.Owner),
		Contact:   strings.TrimSpace(input.Contact),
		Budget:    input.Budget,
		Spent:     0,
		PlayerIDs: []string{},
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teams.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "name", item.Name)

	return item, nil
}

// UpdateTeam patches mutable franchise fields. Spent and PlayerIDs are owned
// by auction settlement and cannot be set here.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Owner != nil {
		item.Owner = strings.TrimSpace(*input.Owner)
	}
	if input.Contact != nil {
		item.Contact = strings.TrimSpace(*input.Contact)
	}
	if input.Budget != nil {
		item.Budget = *input.Budget
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teams.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.teams.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)

	return nil
}
