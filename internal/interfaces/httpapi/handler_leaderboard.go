package httpapi

import "net/http"

func (h *Handler) GetLeaderboardOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardOverview")
	defer span.End()

	overview, err := h.leaderboardService.LeaderboardOverview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"predictions": predictionStandingsToDTO(overview.Predictions),
		"fantasy":     fantasyStandingsToDTO(overview.Fantasy),
		"teams":       teamStandingsToDTO(overview.Teams),
	})
}

func (h *Handler) GetPredictionLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictionLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.PredictionLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "prediction leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionStandingsToDTO(board))
}

func (h *Handler) GetFantasyLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFantasyLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.FantasyLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "fantasy leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyStandingsToDTO(board))
}

func (h *Handler) GetTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.TeamLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStandingsToDTO(board))
}
