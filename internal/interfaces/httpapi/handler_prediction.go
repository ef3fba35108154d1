package httpapi

import (
	"fmt"
	"net/http"

	"github.com/sportarena/api/internal/usecase"
)

type createPredictionRequest struct {
	MatchID           string `json:"match_id" validate:"required"`
	PredictedWinnerID string `json:"predicted_winner_id" validate:"required"`
	PredictedScore    string `json:"predicted_score" validate:"omitempty,max=20"`
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	predictions, err := h.predictionService.ListPredictions(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, predictionToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req createPredictionRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.CreatePrediction(ctx, principal.UserID, usecase.CreatePredictionInput{
		MatchID:           req.MatchID,
		PredictedWinnerID: req.PredictedWinnerID,
		PredictedScore:    req.PredictedScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create prediction failed",
			"user_id", principal.UserID,
			"match_id", req.MatchID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(item))
}
