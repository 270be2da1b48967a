package presence

import (
	"time"
)

type Status string

const (
	StatusOnTime Status = "OnTime"
	StatusLate   Status = "Late"
)

// Presence is one attendance record per (employee, calendar day). The record
// key is deterministic: employee id + date, so a re-entry on the same day
// updates the row instead of duplicating it. A record is open while ExitTime
// is nil and closed once the matching exit event lands; the engine never
// deletes records.
type Presence struct {
	ID             string
	EmployeeID     string
	Date           time.Time // calendar day, midnight in the site timezone
	DayName        string
	EntryTime      time.Time
	ExitTime       *time.Time
	EntryLatitude  float64
	EntryLongitude float64
	ExitLatitude   *float64
	ExitLongitude  *float64
	EntryNote      *string
	ExitNote       *string
	Status         Status
	ExpectedExit   time.Time // shifted later than the base threshold for late entries
	ButtonState    bool      // UI hint: true while the exit action is enabled
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from the directory for dashboard rows
	EmployeeName *string
}

// Open reports whether the record still awaits its exit event.
func (p Presence) Open() bool {
	return p.ExitTime == nil
}
