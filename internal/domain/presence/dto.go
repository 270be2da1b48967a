package presence

import (
	"time"

	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

// DoorAccessRequest carries one RFID reader event. At is the event timestamp;
// the handler stamps it from the server clock.
type DoorAccessRequest struct {
	CardNumber int64
	At         time.Time
}

type DoorOutcome string

const (
	// OutcomeEntry: first event of the day, record created.
	OutcomeEntry DoorOutcome = "entry"
	// OutcomeExit: open record closed.
	OutcomeExit DoorOutcome = "exit"
	// OutcomeWait: open record, event before the expected-exit time.
	// A normal negative result, nothing was mutated.
	OutcomeWait DoorOutcome = "wait"
)

type DoorAccessResponse struct {
	Outcome DoorOutcome `json:"-"`
	Message string      `json:"message"`
}

type EntryRequest struct {
	Day       string  `json:"day"`
	Date      int     `json:"date"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	Time      string  `json:"time"` // HH:MM:SS
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Note      *string `json:"entry_note,omitempty"`
	Status    string  `json:"status"` // OnTime | Late, supplied by the client
}

func (r *EntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Day) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day is required",
		})
	}
	if !validator.IsValidCalendarDate(r.Date, r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date, month and year must form a valid calendar day",
		})
	}
	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM:SS format",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{string(StatusOnTime), string(StatusLate)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: OnTime, Late",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExitRequest struct {
	Date      int     `json:"date"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	Time      string  `json:"time"` // HH:MM:SS
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Note      *string `json:"exit_note,omitempty"`
}

func (r *ExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCalendarDate(r.Date, r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date, month and year must form a valid calendar day",
		})
	}
	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM:SS format",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ButtonStateResponse mirrors the mobile client contract: true after a
// successful entry (exit action enabled), false after a successful exit.
type ButtonStateResponse struct {
	ButtonState bool `json:"button_state"`
}

type HistoryItem struct {
	DayDate   string `json:"day_date"`   // "Monday, 2 January 2006"
	EntryTime string `json:"entry_time"` // "15:04:05"
	ExitTime  string `json:"exit_time"`  // empty while the record is open
	Status    string `json:"status"`
}

type HistoryResponse struct {
	Name        string        `json:"name"`
	Position    string        `json:"position"`
	HistoryList []HistoryItem `json:"history_list"`
}

// StatisticMode selects the aggregation window. The source system had both
// variants; the mode is an explicit parameter instead of a guess.
type StatisticMode string

const (
	// StatisticModeMonth aggregates the current calendar month.
	StatisticModeMonth StatisticMode = "month"
	// StatisticModeAll aggregates the whole history and adds the
	// presence/absent split over an assumed 26 working days per month.
	StatisticModeAll StatisticMode = "all"
)

type StatisticResponse struct {
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	PresencePercent *float64 `json:"presence_percent,omitempty"`
	AbsentPercent   *float64 `json:"absent_percent,omitempty"`
	OnTimePercent   float64  `json:"on_time_percent"`
	LatePercent     float64  `json:"late_percent"`
}

// DashboardRow is one line of the admin presence dashboard.
type DashboardRow struct {
	Name      string `json:"name"`
	Date      string `json:"date"` // "2 January 2006"
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"` // "-" while the record is open
	Status    string `json:"status"`
}
