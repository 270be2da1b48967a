package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/handler/http/response"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/sse"
)

type DashboardHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Live(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	presenceService presence.PresenceService
	hub             *sse.Hub
}

func NewDashboardHandler(presenceService presence.PresenceService, hub *sse.Hub) DashboardHandler {
	return &DashboardHandlerImpl{
		presenceService: presenceService,
		hub:             hub,
	}
}

// List implements DashboardHandler. Every record, newest-first, unfiltered.
func (h *DashboardHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.presenceService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, rows)
}

// Live implements DashboardHandler. Streams door-access events over SSE.
func (h *DashboardHandlerImpl) Live(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Dashboard live marshal error", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, ": keepalive\n\n")
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
