package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/prediction"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

const defaultScorerPoolSize = 8

type CreatePredictionInput struct {
	MatchID           string
	PredictedWinnerID string
	PredictedScore    string
}

// PredictionService records user predictions and settles them against match
// results. Settlement fans out over a shared worker pool since a popular
// match can carry hundreds of predictions.
type PredictionService struct {
	predictions prediction.Repository
	matches     match.Repository
	pool        *ants.Pool
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewPredictionService(
	predictions prediction.Repository,
	matches match.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) (*PredictionService, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	pool, err := ants.NewPool(defaultScorerPoolSize, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create scorer pool: %w", err)
	}

	return &PredictionService{
		predictions: predictions,
		matches:     matches,
		pool:        pool,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Close releases the scoring worker pool.
func (s *PredictionService) Close() {
	s.pool.Release()
}

func (s *PredictionService) ListPredictions(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListPredictions")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.predictions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions by user: %w", err)
	}

	return items, nil
}

func (s *PredictionService) CreatePrediction(ctx context.Context, userID string, input CreatePredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.CreatePrediction")
	defer span.End()

	userID = strings.TrimSpace(userID)
	input.MatchID = strings.TrimSpace(input.MatchID)

	item, exists, err := s.matches.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}
	if item.Status != match.StatusScheduled {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s is no longer open for predictions", ErrConflict, item.ID)
	}

	existing, err := s.predictions.ListByMatch(ctx, item.ID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("list predictions by match: %w", err)
	}
	for _, p := range existing {
		if p.UserID == userID {
			return prediction.Prediction{}, fmt.Errorf("%w: user already predicted match=%s", ErrConflict, item.ID)
		}
	}

	predictionID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	created := prediction.Prediction{
		ID:                predictionID,
		UserID:            userID,
		MatchID:           item.ID,
		PredictedWinnerID: strings.TrimSpace(input.PredictedWinnerID),
		PredictedScore:    strings.TrimSpace(input.PredictedScore),
		CreatedAt:         s.now().UTC(),
	}
	if err := created.Validate(); err != nil {
		return prediction.Prediction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.predictions.Create(ctx, created); err != nil {
		return prediction.Prediction{}, fmt.Errorf("create prediction: %w", err)
	}

	return created, nil
}

// ScoreMatch settles every open prediction on a completed match. Correct
// winner earns PointsCorrectWinner, an exact score call earns
// PointsExactScore on top. Already locked predictions are skipped, so the
// settlement is safe to run again after a partial failure.
func (s *PredictionService) ScoreMatch(ctx context.Context, completed match.Match) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ScoreMatch")
	defer span.End()

	if completed.Status != match.StatusCompleted {
		return 0, fmt.Errorf("%w: match=%s has no recorded result", ErrConflict, completed.ID)
	}

	items, err := s.predictions.ListByMatch(ctx, completed.ID)
	if err != nil {
		return 0, fmt.Errorf("list predictions by match: %w", err)
	}

	actualScore := ""
	if completed.HomeScore != nil && completed.AwayScore != nil {
		actualScore = fmt.Sprintf("%d-%d", *completed.HomeScore, *completed.AwayScore)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		scored   int
		firstErr error
	)

	for _, item := range items {
		if item.Locked {
			continue
		}

		item := item
		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()

			item.Points = scorePrediction(item, completed.WinnerTeamID, actualScore)
			item.Locked = true

			err := s.predictions.Update(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("settle prediction %s: %w", item.ID, err)
				}
				return
			}
			scored++
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit scoring job: %w", submitErr)
			}
			mu.Unlock()
		}
	}

	wg.Wait()

	if firstErr != nil {
		return scored, firstErr
	}

	s.logger.InfoContext(ctx, "predictions settled",
		"match_id", completed.ID,
		"scored", scored,
	)

	return scored, nil
}

func scorePrediction(item prediction.Prediction, winnerTeamID, actualScore string) int {
	points := 0
	if winnerTeamID != "" && item.PredictedWinnerID == winnerTeamID {
		points += prediction.PointsCorrectWinner
		if actualScore != "" && item.PredictedScore == actualScore {
			points += prediction.PointsExactScore
		}
	}

	return points
}
