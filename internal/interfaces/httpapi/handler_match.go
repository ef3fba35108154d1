package httpapi

import (
	"net/http"
	"time"

	"github.com/sportarena/api/internal/usecase"
)

type createMatchRequest struct {
	SportID    string    `json:"sport_id" validate:"required"`
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	KickoffAt  time.Time `json:"kickoff_at" validate:"required"`
	Venue      string    `json:"venue" validate:"omitempty,max=200"`
}

type recordResultRequest struct {
	HomeScore    int    `json:"home_score" validate:"min=0"`
	AwayScore    int    `json:"away_score" validate:"min=0"`
	WinnerTeamID string `json:"winner_team_id" validate:"omitempty"`
	BestPlayerID string `json:"best_player_id" validate:"omitempty"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		SportID:    req.SportID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		KickoffAt:  req.KickoffAt,
		Venue:      req.Venue,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "sport_id", req.SportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordResultRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.RecordResult(ctx, matchID, usecase.RecordResultInput{
		HomeScore:    req.HomeScore,
		AwayScore:    req.AwayScore,
		WinnerTeamID: req.WinnerTeamID,
		BestPlayerID: req.BestPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	// Standings change once a result lands.
	h.leaderboardService.Invalidate(ctx)

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
