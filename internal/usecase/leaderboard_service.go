package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/sportarena/api/internal/domain/fantasy"
	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/prediction"
	"github.com/sportarena/api/internal/domain/team"
	"github.com/sportarena/api/internal/platform/cache"
	"github.com/sportarena/api/internal/platform/logging"
)

// Points per win on the franchise table.
const teamPointsPerWin = 2

const (
	cacheKeyPredictionBoard = "leaderboard:predictions"
	cacheKeyFantasyBoard    = "leaderboard:fantasy"
	cacheKeyTeamBoard       = "leaderboard:teams"
)

type PredictionStanding struct {
	UserID      string
	Points      int
	Predictions int
}

type FantasyStanding struct {
	EntryID string
	UserID  string
	Name    string
	Points  int
}

type TeamStanding struct {
	TeamID    string
	Name      string
	Played    int
	Wins      int
	Points    int
	Spent     int64
	Remaining int64
}

// Overview bundles all three tables for a single dashboard read.
type Overview struct {
	Predictions []PredictionStanding
	Fantasy     []FantasyStanding
	Teams       []TeamStanding
}

// LeaderboardService computes prediction, fantasy and franchise standings.
// Tables are recomputed on demand and held in a TTL cache; concurrent
// requests for a cold table share one computation.
type LeaderboardService struct {
	predictions prediction.Repository
	entries     fantasy.Repository
	matches     match.Repository
	teams       team.Repository
	cache       *cache.Store
	logger      *logging.Logger
}

func NewLeaderboardService(
	predictions prediction.Repository,
	entries fantasy.Repository,
	matches match.Repository,
	teams team.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if store == nil {
		store = cache.NewStore(30 * time.Second)
	}

	return &LeaderboardService{
		predictions: predictions,
		entries:     entries,
		matches:     matches,
		teams:       teams,
		cache:       store,
		logger:      logger,
	}
}

func (s *LeaderboardService) PredictionLeaderboard(ctx context.Context) ([]PredictionStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.PredictionLeaderboard")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, cacheKeyPredictionBoard, func(ctx context.Context) (any, error) {
		return s.computePredictionBoard(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]PredictionStanding), nil
}

func (s *LeaderboardService) FantasyLeaderboard(ctx context.Context) ([]FantasyStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.FantasyLeaderboard")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, cacheKeyFantasyBoard, func(ctx context.Context) (any, error) {
		return s.computeFantasyBoard(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]FantasyStanding), nil
}

func (s *LeaderboardService) TeamLeaderboard(ctx context.Context) ([]TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TeamLeaderboard")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, cacheKeyTeamBoard, func(ctx context.Context) (any, error) {
		return s.computeTeamBoard(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]TeamStanding), nil
}

// LeaderboardOverview computes all three tables, fanning the work out so a
// fully cold dashboard pays for the slowest table instead of the sum.
func (s *LeaderboardService) LeaderboardOverview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.LeaderboardOverview")
	defer span.End()

	var (
		overview Overview
		mu       sync.Mutex
		firstErr error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		board, err := s.PredictionLeaderboard(ctx)
		overview.Predictions = board
		record(err)
	})
	wg.Go(func() {
		board, err := s.FantasyLeaderboard(ctx)
		overview.Fantasy = board
		record(err)
	})
	wg.Go(func() {
		board, err := s.TeamLeaderboard(ctx)
		overview.Teams = board
		record(err)
	})
	wg.Wait()

	if firstErr != nil {
		return Overview{}, firstErr
	}

	return overview, nil
}

// Invalidate drops all cached tables. Called after writes that change
// standings (result recorded, player sold).
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	s.cache.Delete(ctx, cacheKeyPredictionBoard)
	s.cache.Delete(ctx, cacheKeyFantasyBoard)
	s.cache.Delete(ctx, cacheKeyTeamBoard)
}

func (s *LeaderboardService) computePredictionBoard(ctx context.Context) ([]PredictionStanding, error) {
	items, err := s.predictions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	byUser := make(map[string]*PredictionStanding)
	for _, item := range items {
		standing, ok := byUser[item.UserID]
		if !ok {
			standing = &PredictionStanding{UserID: item.UserID}
			byUser[item.UserID] = standing
		}
		standing.Predictions++
		if item.Locked {
			standing.Points += item.Points
		}
	}

	board := make([]PredictionStanding, 0, len(byUser))
	for _, standing := range byUser {
		board = append(board, *standing)
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		return board[i].UserID < board[j].UserID
	})

	return board, nil
}

func (s *LeaderboardService) computeFantasyBoard(ctx context.Context) ([]FantasyStanding, error) {
	items, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy entries: %w", err)
	}

	board := make([]FantasyStanding, 0, len(items))
	for _, item := range items {
		board = append(board, FantasyStanding{
			EntryID: item.ID,
			UserID:  item.UserID,
			Name:    item.Name,
			Points:  item.Points,
		})
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		return board[i].Name < board[j].Name
	})

	return board, nil
}

func (s *LeaderboardService) computeTeamBoard(ctx context.Context) ([]TeamStanding, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	byTeam := make(map[string]*TeamStanding, len(teams))
	board := make([]TeamStanding, 0, len(teams))
	for _, t := range teams {
		board = append(board, TeamStanding{
			TeamID:    t.ID,
			Name:      t.Name,
			Spent:     t.Spent,
			Remaining: t.Remaining(),
		})
	}
	for i := range board {
		byTeam[board[i].TeamID] = &board[i]
	}

	for _, m := range matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			if standing, ok := byTeam[teamID]; ok {
				standing.Played++
			}
		}
		if standing, ok := byTeam[m.WinnerTeamID]; ok {
			standing.Wins++
			standing.Points += teamPointsPerWin
		}
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		return board[i].Name < board[j].Name
	})

	return board, nil
}
