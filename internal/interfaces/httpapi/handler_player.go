package httpapi

import (
	"net/http"

	"github.com/sportarena/api/internal/usecase"
)

type createPlayerRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Partner     string   `json:"partner" validate:"omitempty,max=100"`
	Age         int      `json:"age" validate:"omitempty,gt=0,lt=120"`
	SportIDs    []string `json:"sport_ids" validate:"omitempty,dive,required"`
	SkillRating int      `json:"skill_rating" validate:"omitempty,min=1,max=10"`
	BasePrice   int64    `json:"base_price" validate:"omitempty,gt=0"`
	Preference  string   `json:"preference" validate:"omitempty,oneof=singles doubles both"`
}

type bulkImportPlayersRequest struct {
	Players []createPlayerRequest `json:"players" validate:"required,min=1,dive"`
}

type updatePlayerRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Partner     *string  `json:"partner" validate:"omitempty,max=100"`
	Age         *int     `json:"age" validate:"omitempty,gt=0,lt=120"`
	SportIDs    []string `json:"sport_ids" validate:"omitempty,dive,required"`
	SkillRating *int     `json:"skill_rating" validate:"omitempty,min=1,max=10"`
	BasePrice   *int64   `json:"base_price" validate:"omitempty,gt=0"`
	Preference  *string  `json:"preference" validate:"omitempty,oneof=singles doubles both"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, toCreatePlayerInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) BulkImportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BulkImportPlayers")
	defer span.End()

	var req bulkImportPlayersRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.CreatePlayerInput, 0, len(req.Players))
	for _, record := range req.Players {
		inputs = append(inputs, toCreatePlayerInput(record))
	}

	created, err := h.playerService.BulkImport(ctx, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk import players failed", "count", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(created))
	for _, p := range created {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req updatePlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.UpdatePlayer(ctx, playerID, usecase.UpdatePlayerInput{
		Name:        req.Name,
		Partner:     req.Partner,
		Age:         req.Age,
		SportIDs:    req.SportIDs,
		SkillRating: req.SkillRating,
		BasePrice:   req.BasePrice,
		Preference:  req.Preference,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toCreatePlayerInput(req createPlayerRequest) usecase.CreatePlayerInput {
	return usecase.CreatePlayerInput{
		Name:        req.Name,
		Partner:     req.Partner,
		Age:         req.Age,
		SportIDs:    req.SportIDs,
		SkillRating: req.SkillRating,
		BasePrice:   req.BasePrice,
		Preference:  req.Preference,
	}
}
