package response

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "failed to encode response",
		})
	}
}

// Success responses

func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func OKWithMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// Error responses

// BadRequest carries a message plus the upstream error detail.
func BadRequest(w http.ResponseWriter, message string, errs interface{}) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": message,
		"errors":  errs,
	})
}

// NotAcceptable renders the validation field map.
func NotAcceptable(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusNotAcceptable, details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{"message": message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, map[string]string{"message": message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, map[string]string{"message": message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": message})
}
