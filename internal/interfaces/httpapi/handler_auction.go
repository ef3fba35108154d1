package httpapi

import (
	"context"
	"net/http"
)

type startAuctionRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type placeBidRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

func (h *Handler) GetAuctionStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuctionStatus")
	defer span.End()

	snap := h.auctionService.Status(ctx)
	writeSuccess(ctx, w, http.StatusOK, auctionSnapshotToDTO(snap))
}

func (h *Handler) StartAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartAuction")
	defer span.End()

	var req startAuctionRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := actorFromContext(ctx)
	item, err := h.auctionService.Start(ctx, req.PlayerID, actor)
	if err != nil {
		h.logger.WarnContext(ctx, "start auction failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceBid")
	defer span.End()

	var req placeBidRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := actorFromContext(ctx)
	bid, bids, err := h.auctionService.PlaceBid(ctx, req.TeamID, req.Amount, actor)
	if err != nil {
		h.logger.WarnContext(ctx, "place bid failed",
			"team_id", req.TeamID,
			"amount", req.Amount,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"bid":  bidToDTO(bid),
		"bids": bidsToDTO(bids),
	})
}

func (h *Handler) FinalizeAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeAuction")
	defer span.End()

	actor := actorFromContext(ctx)
	outcome, err := h.auctionService.Finalize(ctx, actor)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize auction failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	// A sale moves team spend on the standings.
	if outcome.Sold {
		h.leaderboardService.Invalidate(ctx)
	}

	writeSuccess(ctx, w, http.StatusOK, auctionOutcomeToDTO(outcome))
}

func (h *Handler) StopAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StopAuction")
	defer span.End()

	actor := actorFromContext(ctx)
	if err := h.auctionService.Stop(ctx, actor); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "stopped"})
}

func actorFromContext(ctx context.Context) string {
	if principal, ok := principalFromContext(ctx); ok {
		return principal.UserID
	}
	return ""
}
