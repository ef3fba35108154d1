package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sportarena/api/internal/domain/player"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

// Defaults applied to sparse bulk-import records.
const (
	defaultPlayerAge     = 25
	defaultSkillRating   = 5
	defaultBasePrice     = 500
	maxBulkImportPlayers = 500
)

type CreatePlayerInput struct {
	Name        string
	Partner     string
	Age         int
	SportIDs    []string
	SkillRating int
	BasePrice   int64
	Preference  string
}

type UpdatePlayerInput struct {
	Name        *string
	Partner     *string
	Age         *int
	SportIDs    []string
	SkillRating *int
	BasePrice   *int64
	Preference  *string
}

type PlayerService struct {
	players player.Repository
	idGen   idgen.Generator
	logger  *logging.Logger
	now     func() time.Time
}

func NewPlayerService(players player.Repository, idGen idgen.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &PlayerService{
		players: players,
		idGen:   idGen,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item, err := s.buildPlayer(input)
	if err != nil {
		return player.Player{}, err
	}

	if err := s.players.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"player_id", item.ID,
		"name", item.Name,
		"base_price", item.BasePrice,
	)

	return item, nil
}

// BulkImport registers many players at once, applying registration defaults
// to sparse records. Parsing the upload format is the caller's concern.
func (s *PlayerService) BulkImport(ctx context.Context, inputs []CreatePlayerInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.BulkImport")
	defer span.End()

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: players are required", ErrInvalidInput)
	}
	if len(inputs) > maxBulkImportPlayers {
		return nil, fmt.Errorf("%w: at most %d players per import", ErrInvalidInput, maxBulkImportPlayers)
	}

	created := make([]player.Player, 0, len(inputs))
	for idx, input := range inputs {
		if input.Age == 0 {
			input.Age = defaultPlayerAge
		}
		if input.SkillRating == 0 {
			input.SkillRating = defaultSkillRating
		}
		if input.BasePrice == 0 {
			input.BasePrice = defaultBasePrice
		}
		if input.Preference == "" {
			input.Preference = string(player.PreferenceBoth)
		}

		item, err := s.buildPlayer(input)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		if err := s.players.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create player record %d: %w", idx, err)
		}
		created = append(created, item)
	}

	s.logger.InfoContext(ctx, "players imported", "count", len(created))

	return created, nil
}

// UpdatePlayer patches registration fields. TeamID and SoldPrice are owned by
// auction settlement and never pass through here.
func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	item, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Partner != nil {
		item.Partner = strings.TrimSpace(*input.Partner)
	}
	if input.Age != nil {
		item.Age = *input.Age
	}
	if input.SportIDs != nil {
		item.SportIDs = input.SportIDs
	}
	if input.SkillRating != nil {
		item.SkillRating = *input.SkillRating
	}
	if input.BasePrice != nil {
		item.BasePrice = *input.BasePrice
	}
	if input.Preference != nil {
		item.Preference = player.Preference(*input.Preference)
	}

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.players.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	if err := s.players.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)

	return nil
}

func (s *PlayerService) buildPlayer(input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.BasePrice <= 0 {
		return player.Player{}, fmt.Errorf("%w: base price must be greater than zero", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:          playerID,
		Name:        input.Name,
		Partner:     strings.TrimSpace(input.Partner),
		Age:         input.Age,
		SportIDs:    input.SportIDs,
		SkillRating: input.SkillRating,
		BasePrice:   input.BasePrice,
		Preference:  player.Preference(input.Preference),
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}
