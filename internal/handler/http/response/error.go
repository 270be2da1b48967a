package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation failures carry a per-field map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		NotAcceptable(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "refresh token revoked")
	case errors.Is(err, auth.ErrNotAdmin):
		Forbidden(w, "admin access required")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, "could not reset password", "reset token is invalid or expired")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "employee not found")
	case errors.Is(err, employee.ErrCardNotFound):
		NotFound(w, "Access denied. ID card not found.")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "email already registered")
	case errors.Is(err, employee.ErrCardNumberExists):
		Conflict(w, "id card already assigned")

	// Presence domain errors
	case errors.Is(err, presence.ErrAlreadyExited):
		Conflict(w, "presence already closed for today")
	case errors.Is(err, presence.ErrNoOpenRecord):
		Conflict(w, "no open presence record for today")
	case errors.Is(err, presence.ErrRecordNotFound):
		NotFound(w, "presence record not found")

	// Work-time domain errors
	case errors.Is(err, worktime.ErrCategoryNotFound):
		NotFound(w, "part-time category not found")
	case errors.Is(err, worktime.ErrNoEmployeesMatch):
		BadRequest(w, "could not save work time", "no employees match the given names")

	// Upstream failures (record store, identity provider). The wrapped
	// detail travels with the response.
	default:
		message := "request could not be completed"
		detail := err.Error()
		if inner := errors.Unwrap(err); inner != nil {
			message = strings.TrimSuffix(strings.TrimSuffix(detail, inner.Error()), ": ")
			detail = inner.Error()
		}
		BadRequest(w, message, detail)
	}
}
