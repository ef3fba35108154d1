package httpapi

import (
	"net/http"

	"github.com/sportarena/api/internal/usecase"
)

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Owner   string `json:"owner" validate:"omitempty,max=100"`
	Contact string `json:"contact" validate:"omitempty,max=100"`
	Budget  int64  `json:"budget" validate:"omitempty,gt=0"`
}

type updateTeamRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Owner   *string `json:"owner" validate:"omitempty,max=100"`
	Contact *string `json:"contact" validate:"omitempty,max=100"`
	Budget  *int64  `json:"budget" validate:"omitempty,gt=0"`
	Active  *bool   `json:"active"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:    req.Name,
		Owner:   req.Owner,
		Contact: req.Contact,
		Budget:  req.Budget,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req updateTeamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateTeam(ctx, teamID, usecase.UpdateTeamInput{
		Name:    req.Name,
		Owner:   req.Owner,
		Contact: req.Contact,
		Budget:  req.Budget,
		Active:  req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
