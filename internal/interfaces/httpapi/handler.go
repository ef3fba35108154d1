package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/sportarena/api/internal/domain/sport"
	"github.com/sportarena/api/internal/platform/logging"
	"github.com/sportarena/api/internal/usecase"
)

type Handler struct {
	auctionService     *usecase.AuctionService
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	sportService       *usecase.SportService
	matchService       *usecase.MatchService
	predictionService  *usecase.PredictionService
	fantasyService     *usecase.FantasyService
	leaderboardService *usecase.LeaderboardService
	defaultSports      []sport.Sport
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	auctionService *usecase.AuctionService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	sportService *usecase.SportService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	fantasyService *usecase.FantasyService,
	leaderboardService *usecase.LeaderboardService,
	defaultSports []sport.Sport,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		auctionService:     auctionService,
		teamService:        teamService,
		playerService:      playerService,
		sportService:       sportService,
		matchService:       matchService,
		predictionService:  predictionService,
		fantasyService:     fantasyService,
		leaderboardService: leaderboardService,
		defaultSports:      defaultSports,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// Bootstrap seeds the default sport catalog. Safe to call more than once.
func (h *Handler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Bootstrap")
	defer span.End()

	seeded, err := h.sportService.Bootstrap(ctx, h.defaultSports)
	if err != nil {
		h.logger.ErrorContext(ctx, "bootstrap failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"seeded": seeded})
}

func (h *Handler) decodeRequest(r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
