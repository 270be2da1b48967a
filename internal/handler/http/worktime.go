package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
	"github.com/kantorkita/presensi-backend-go/internal/handler/http/response"
)

type WorkTimeHandler interface {
	MyWorkTime(w http.ResponseWriter, r *http.Request)
	SetFullTime(w http.ResponseWriter, r *http.Request)
	AddPartTime(w http.ResponseWriter, r *http.Request)
	UpdatePartTime(w http.ResponseWriter, r *http.Request)
	DeletePartTime(w http.ResponseWriter, r *http.Request)
}

type WorkTimeHandlerImpl struct {
	workTimeService worktime.WorkTimeService
}

func NewWorkTimeHandler(workTimeService worktime.WorkTimeService) WorkTimeHandler {
	return &WorkTimeHandlerImpl{workTimeService: workTimeService}
}

// MyWorkTime implements WorkTimeHandler.
func (h *WorkTimeHandlerImpl) MyWorkTime(w http.ResponseWriter, r *http.Request) {
	resp, err := h.workTimeService.MyWorkTime(r.Context())
	if err != nil {
		slog.Error("MyWorkTime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// SetFullTime implements WorkTimeHandler. Create and update share the same
// semantics: the schedule is a singleton.
func (h *WorkTimeHandlerImpl) SetFullTime(w http.ResponseWriter, r *http.Request) {
	var fullTimeReq worktime.FullTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&fullTimeReq); err != nil {
		slog.Error("SetFullTime decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	if err := h.workTimeService.SetFullTime(r.Context(), fullTimeReq); err != nil {
		slog.Error("SetFullTime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "full-time schedule saved")
}

// AddPartTime implements WorkTimeHandler.
func (h *WorkTimeHandlerImpl) AddPartTime(w http.ResponseWriter, r *http.Request) {
	var partTimeReq worktime.PartTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&partTimeReq); err != nil {
		slog.Error("AddPartTime decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	resp, err := h.workTimeService.AddPartTime(r.Context(), partTimeReq)
	if err != nil {
		slog.Error("AddPartTime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp)
}

// UpdatePartTime implements WorkTimeHandler.
func (h *WorkTimeHandlerImpl) UpdatePartTime(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	var partTimeReq worktime.PartTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&partTimeReq); err != nil {
		slog.Error("UpdatePartTime decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	if err := h.workTimeService.UpdatePartTime(r.Context(), category, partTimeReq); err != nil {
		slog.Error("UpdatePartTime service error", "error", err, "category", category)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "part-time category saved")
}

// DeletePartTime implements WorkTimeHandler.
func (h *WorkTimeHandlerImpl) DeletePartTime(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	if err := h.workTimeService.DeletePartTime(r.Context(), category); err != nil {
		slog.Error("DeletePartTime service error", "error", err, "category", category)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "part-time category deleted")
}
