package httpapi

import (
	"net/http"

	"github.com/sportarena/api/internal/usecase"
)

type createSportRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Kind          string `json:"kind" validate:"required,oneof=team individual"`
	Gender        string `json:"gender" validate:"omitempty,max=20"`
	MaxPlayers    int    `json:"max_players" validate:"required,gt=0"`
	ScoringMethod string `json:"scoring_method" validate:"omitempty,max=50"`
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.sportService.ListSports(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		items = append(items, sportToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSport")
	defer span.End()

	var req createSportRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.sportService.CreateSport(ctx, usecase.CreateSportInput{
		Name:          req.Name,
		Kind:          req.Kind,
		Gender:        req.Gender,
		MaxPlayers:    req.MaxPlayers,
		ScoringMethod: req.ScoringMethod,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create sport failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sportToDTO(item))
}

func (h *Handler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSport")
	defer span.End()

	sportID := r.PathValue("sportID")
	if err := h.sportService.DeleteSport(ctx, sportID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
