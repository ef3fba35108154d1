package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/sport"
	"github.com/sportarena/api/internal/domain/team"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

type CreateMatchInput struct {
	SportID    string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	Venue      string
}

type RecordResultInput struct {
	HomeScore    int
	AwayScore    int
	WinnerTeamID string
	BestPlayerID string
}

// ResultScorer settles downstream records (predictions) once a match result
// is recorded.
type ResultScorer interface {
	ScoreMatch(ctx context.Context, completed match.Match) (int, error)
}

type MatchService struct {
	matches match.Repository
	teams   team.Repository
	sports  sport.Repository
	scorer  ResultScorer
	idGen   idgen.Generator
	logger  *logging.Logger
	now     func() time.Time
}

func NewMatchService(
	matches match.Repository,
	teams team.Repository,
	sports sport.Repository,
	scorer ResultScorer,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &MatchService{
		matches: matches,
		teams:   teams,
		sports:  sports,
		scorer:  scorer,
		idGen:   idGen,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	input.SportID = strings.TrimSpace(input.SportID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)

	if _, exists, err := s.sports.GetByID(ctx, input.SportID); err != nil {
		return match.Match{}, fmt.Errorf("get sport: %w", err)
	} else if !exists {
		return match.Match{}, fmt.Errorf("%w: sport=%s", ErrNotFound, input.SportID)
	}
	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, exists, err := s.teams.GetByID(ctx, teamID); err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:         matchID,
		SportID:    input.SportID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		KickoffAt:  input.KickoffAt,
		Venue:      strings.TrimSpace(input.Venue),
		Status:     match.StatusScheduled,
		CreatedAt:  s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matches.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", item.ID,
		"sport_id", item.SportID,
		"home", item.HomeTeamID,
		"away", item.AwayTeamID,
	)

	return item, nil
}

// RecordResult completes a scheduled match and settles predictions for it.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, input RecordResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	item, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status == match.StatusCompleted {
		return match.Match{}, fmt.Errorf("%w: match=%s already completed", ErrConflict, item.ID)
	}

	winner := strings.TrimSpace(input.WinnerTeamID)
	if winner != "" && winner != item.HomeTeamID && winner != item.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: winner must be one of the playing teams", ErrInvalidInput)
	}

	home, away := input.HomeScore, input.AwayScore
	item.HomeScore = &home
	item.AwayScore = &away
	item.WinnerTeamID = winner
	item.BestPlayerID = strings.TrimSpace(input.BestPlayerID)
	item.Status = match.StatusCompleted

	if err := s.matches.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	scored := 0
	if s.scorer != nil {
		scored, err = s.scorer.ScoreMatch(ctx, item)
		if err != nil {
			// The result itself is recorded; scoring can be retried by
			// recording the result again after a manual status reset.
			s.logger.ErrorContext(ctx, "prediction scoring failed",
				"match_id", item.ID,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", item.ID,
		"winner_team_id", winner,
		"predictions_scored", scored,
	)

	return item, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return err
	}

	if err := s.matches.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
