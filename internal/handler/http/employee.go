package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	AssignCard(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// AssignCard implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignCard(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var assignReq employee.AssignCardRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignCard decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	if err := h.employeeService.AssignCard(r.Context(), uid, assignReq); err != nil {
		slog.Error("AssignCard service error", "error", err, "uid", uid)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "id card assigned")
}
