package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const streamKeepAliveInterval = 25 * time.Second

// StreamAuction pushes auction state changes to the client as server-sent
// events. Every subscriber gets the current snapshot immediately, then one
// event per state change, plus keep-alive comments for idle proxies.
func (h *Handler) StreamAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamAuction")
	defer span.End()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	updates, cancel := h.auctionService.Subscribe()
	defer cancel()

	if err := writeAuctionEvent(w, auctionSnapshotToDTO(h.auctionService.Status(ctx))); err != nil {
		return
	}
	flusher.Flush()

	keepAlive := time.NewTicker(streamKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, open := <-updates:
			if !open {
				return
			}
			if err := writeAuctionEvent(w, auctionSnapshotToDTO(snap)); err != nil {
				return
			}
			flusher.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeAuctionEvent(w http.ResponseWriter, payload auctionSnapshotDTO) error {
	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("event: auction\ndata: ")
	buf.Write(encoded)
	buf.WriteString("\n\n")

	_, err = w.Write(buf.Bytes())
	return err
}
