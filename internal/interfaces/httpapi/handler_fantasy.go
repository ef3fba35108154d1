package httpapi

import (
	"fmt"
	"net/http"

	"github.com/sportarena/api/internal/usecase"
)

type createFantasyEntryRequest struct {
	SportID       string   `json:"sport_id" validate:"required"`
	Name          string   `json:"name" validate:"required,max=100"`
	PlayerIDs     []string `json:"player_ids" validate:"required,min=1,dive,required"`
	CaptainID     string   `json:"captain_id" validate:"omitempty"`
	ViceCaptainID string   `json:"vice_captain_id" validate:"omitempty"`
}

type updateFantasyEntryRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=100"`
	PlayerIDs     []string `json:"player_ids" validate:"omitempty,min=1,dive,required"`
	CaptainID     *string  `json:"captain_id"`
	ViceCaptainID *string  `json:"vice_captain_id"`
}

func (h *Handler) ListMyFantasyEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyFantasyEntries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	entries, err := h.fantasyService.ListEntries(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fantasy entries failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fantasyEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, fantasyEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateFantasyEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFantasyEntry")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req createFantasyEntryRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fantasyService.CreateEntry(ctx, principal.UserID, usecase.CreateFantasyEntryInput{
		SportID:       req.SportID,
		Name:          req.Name,
		PlayerIDs:     req.PlayerIDs,
		CaptainID:     req.CaptainID,
		ViceCaptainID: req.ViceCaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fantasy entry failed",
			"user_id", principal.UserID,
			"sport_id", req.SportID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fantasyEntryToDTO(item))
}

func (h *Handler) UpdateFantasyEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFantasyEntry")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	entryID := r.PathValue("entryID")

	var req updateFantasyEntryRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fantasyService.UpdateEntry(ctx, principal.UserID, entryID, usecase.UpdateFantasyEntryInput{
		Name:          req.Name,
		PlayerIDs:     req.PlayerIDs,
		CaptainID:     req.CaptainID,
		ViceCaptainID: req.ViceCaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update fantasy entry failed",
			"user_id", principal.UserID,
			"entry_id", entryID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyEntryToDTO(item))
}
