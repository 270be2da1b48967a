package worktime

import (
	"strings"

	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

type FullTimeRequest struct {
	EntryTime string `json:"entry_time"` // HH:MM:SS
	ExitTime  string `json:"exit_time"`  // HH:MM:SS
}

func (r *FullTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time is required",
		})
	} else if !validator.IsValidClockTime(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time is required",
		})
	} else if !validator.IsValidClockTime(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PartTimeRequest creates or updates a shift category. Name carries the
// member display names, comma separated, as the admin client sends them.
type PartTimeRequest struct {
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
	Name      string `json:"name"`
}

func (r *PartTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time is required",
		})
	} else if !validator.IsValidClockTime(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time is required",
		})
	} else if !validator.IsValidClockTime(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Names splits the comma-separated member list.
func (r *PartTimeRequest) Names() []string {
	parts := strings.Split(r.Name, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// WorkTimeResponse is the effective schedule shown to the employee client.
type WorkTimeResponse struct {
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}

type PartTimeResponse struct {
	Category  string `json:"category"`
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}
