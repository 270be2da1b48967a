package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/handler/http/response"
)

type PresenceHandler interface {
	DoorAccess(w http.ResponseWriter, r *http.Request)
	Entry(w http.ResponseWriter, r *http.Request)
	Exit(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Statistic(w http.ResponseWriter, r *http.Request)
}

type PresenceHandlerImpl struct {
	presenceService presence.PresenceService
}

func NewPresenceHandler(presenceService presence.PresenceService) PresenceHandler {
	return &PresenceHandlerImpl{presenceService: presenceService}
}

// DoorAccess implements PresenceHandler. The reader sends only the card
// number; the event time is the server clock.
func (p *PresenceHandlerImpl) DoorAccess(w http.ResponseWriter, r *http.Request) {
	cardNumber, err := strconv.ParseInt(chi.URLParam(r, "id_card"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid id card", "id_card must be numeric")
		return
	}

	resp, err := p.presenceService.DoorAccess(r.Context(), presence.DoorAccessRequest{
		CardNumber: cardNumber,
		At:         time.Now(),
	})
	if err != nil {
		slog.Error("DoorAccess service error", "error", err, "card_number", cardNumber)
		response.HandleError(w, err)
		return
	}

	slog.Info("door access", "outcome", resp.Outcome, "card_number", cardNumber)
	response.OK(w, resp)
}

// Entry implements PresenceHandler.
func (p *PresenceHandlerImpl) Entry(w http.ResponseWriter, r *http.Request) {
	var entryReq presence.EntryRequest

	if err := json.NewDecoder(r.Body).Decode(&entryReq); err != nil {
		slog.Error("Entry decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	resp, err := p.presenceService.RecordEntry(r.Context(), entryReq)
	if err != nil {
		slog.Error("Entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Exit implements PresenceHandler.
func (p *PresenceHandlerImpl) Exit(w http.ResponseWriter, r *http.Request) {
	var exitReq presence.ExitRequest

	if err := json.NewDecoder(r.Body).Decode(&exitReq); err != nil {
		slog.Error("Exit decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	resp, err := p.presenceService.RecordExit(r.Context(), exitReq)
	if err != nil {
		slog.Error("Exit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// History implements PresenceHandler.
func (p *PresenceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	resp, err := p.presenceService.History(r.Context())
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Statistic implements PresenceHandler. mode=month (default) or mode=all.
func (p *PresenceHandlerImpl) Statistic(w http.ResponseWriter, r *http.Request) {
	mode := presence.StatisticMode(r.URL.Query().Get("mode"))
	if mode != "" && mode != presence.StatisticModeMonth && mode != presence.StatisticModeAll {
		response.BadRequest(w, "invalid statistic mode", "mode must be one of: month, all")
		return
	}

	resp, err := p.presenceService.Statistic(r.Context(), mode)
	if err != nil {
		slog.Error("Statistic service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}
