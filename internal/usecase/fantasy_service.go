package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sportarena/api/internal/domain/fantasy"
	"github.com/sportarena/api/internal/domain/player"
	"github.com/sportarena/api/internal/domain/sport"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
)

type CreateFantasyEntryInput struct {
	SportID       string
	Name          string
	PlayerIDs     []string
	CaptainID     string
	ViceCaptainID string
}

type UpdateFantasyEntryInput struct {
	Name          *string
	PlayerIDs     []string
	CaptainID     *string
	ViceCaptainID *string
}

// FantasyService manages user fantasy entries. Only sold players can be
// picked, and entries are owned: a user may only read and edit their own.
type FantasyService struct {
	entries fantasy.Repository
	players player.Repository
	sports  sport.Repository
	idGen   idgen.Generator
	logger  *logging.Logger
	now     func() time.Time
}

func NewFantasyService(
	entries fantasy.Repository,
	players player.Repository,
	sports sport.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *FantasyService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FantasyService{
		entries: entries,
		players: players,
		sports:  sports,
		idGen:   idGen,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *FantasyService) ListEntries(ctx context.Context, userID string) ([]fantasy.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListEntries")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list fantasy entries: %w", err)
	}

	return items, nil
}

func (s *FantasyService) CreateEntry(ctx context.Context, userID string, input CreateFantasyEntryInput) (fantasy.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.CreateEntry")
	defer span.End()

	userID = strings.TrimSpace(userID)
	input.SportID = strings.TrimSpace(input.SportID)

	if _, exists, err := s.sports.GetByID(ctx, input.SportID); err != nil {
		return fantasy.Entry{}, fmt.Errorf("get sport: %w", err)
	} else if !exists {
		return fantasy.Entry{}, fmt.Errorf("%w: sport=%s", ErrNotFound, input.SportID)
	}

	if err := s.validateRoster(ctx, input.PlayerIDs, input.CaptainID, input.ViceCaptainID); err != nil {
		return fantasy.Entry{}, err
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.Entry{}, fmt.Errorf("generate entry id: %w", err)
	}

	createdAt := s.now().UTC()
	entry := fantasy.Entry{
		ID:            entryID,
		UserID:        userID,
		SportID:       input.SportID,
		Name:          strings.TrimSpace(input.Name),
		PlayerIDs:     slices.Clone(input.PlayerIDs),
		CaptainID:     strings.TrimSpace(input.CaptainID),
		ViceCaptainID: strings.TrimSpace(input.ViceCaptainID),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := entry.Validate(); err != nil {
		return fantasy.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return fantasy.Entry{}, fmt.Errorf("create fantasy entry: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy entry created",
		"entry_id", entry.ID,
		"user_id", entry.UserID,
		"sport_id", entry.SportID,
	)

	return entry, nil
}

func (s *FantasyService) UpdateEntry(ctx context.Context, userID, entryID string, input UpdateFantasyEntryInput) (fantasy.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.UpdateEntry")
	defer span.End()

	userID = strings.TrimSpace(userID)
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return fantasy.Entry{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	entry, exists, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fantasy.Entry{}, fmt.Errorf("get fantasy entry: %w", err)
	}
	if !exists {
		return fantasy.Entry{}, fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}
	if entry.UserID != userID {
		return fantasy.Entry{}, fmt.Errorf("%w: entry=%s belongs to another user", ErrForbidden, entryID)
	}

	if input.Name != nil {
		entry.Name = strings.TrimSpace(*input.Name)
	}
	if input.PlayerIDs != nil {
		entry.PlayerIDs = slices.Clone(input.PlayerIDs)
	}
	if input.CaptainID != nil {
		entry.CaptainID = strings.TrimSpace(*input.CaptainID)
	}
	if input.ViceCaptainID != nil {
		entry.ViceCaptainID = strings.TrimSpace(*input.ViceCaptainID)
	}
	entry.UpdatedAt = s.now().UTC()

	if err := s.validateRoster(ctx, entry.PlayerIDs, entry.CaptainID, entry.ViceCaptainID); err != nil {
		return fantasy.Entry{}, err
	}
	if err := entry.Validate(); err != nil {
		return fantasy.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return fantasy.Entry{}, fmt.Errorf("update fantasy entry: %w", err)
	}

	return entry, nil
}

// validateRoster checks that every picked player exists and has been sold at
// auction, and that captain picks come from the roster.
func (s *FantasyService) validateRoster(ctx context.Context, playerIDs []string, captainID, viceCaptainID string) error {
	for _, playerID := range playerIDs {
		item, exists, err := s.players.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		if !item.Sold() {
			return fmt.Errorf("%w: player=%s has not been sold at auction", ErrInvalidInput, playerID)
		}
	}

	captainID = strings.TrimSpace(captainID)
	viceCaptainID = strings.TrimSpace(viceCaptainID)
	for _, pick := range []string{captainID, viceCaptainID} {
		if pick != "" && !slices.Contains(playerIDs, pick) {
			return fmt.Errorf("%w: captain picks must come from the selected players", ErrInvalidInput)
		}
	}

	return nil
}
