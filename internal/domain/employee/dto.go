package employee

import (
	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

// AssignCardRequest binds an RFID card to an employee so the door reader can
// resolve them.
type AssignCardRequest struct {
	CardNumber int64 `json:"id_card"`
}

func (r *AssignCardRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CardNumber <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_card",
			Message: "id_card must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
