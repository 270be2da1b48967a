package presence

import (
	"context"
	"time"
)

// Period narrows statistics to one calendar month.
type Period struct {
	Month time.Month
	Year  int
}

// Counts is the raw material of a statistics snapshot.
type Counts struct {
	Presence int64
	OnTime   int64
	Late     int64
}

// PresenceRepository is the record-store access layer. The one-open-record-
// per-employee-per-day invariant rests on the store's (employee_id, date)
// uniqueness; Upsert is the keyed write that makes same-day re-entry an
// update rather than a duplicate.
type PresenceRepository interface {
	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Presence, error)

	// Upsert writes the entry side of the record keyed by (employee, date),
	// resetting the exit fields.
	Upsert(ctx context.Context, rec Presence) (Presence, error)

	// PatchExit mutates only the exit fields of the day's record.
	PatchExit(ctx context.Context, employeeID string, date time.Time, exitTime time.Time, lat, lng float64, note *string) error

	// ListByEmployee returns the employee's records newest-first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Presence, error)

	// ListAll returns every record newest-first with employee names joined,
	// for the admin dashboard.
	ListAll(ctx context.Context) ([]Presence, error)

	// CountByEmployee aggregates presence/on-time/late counts, optionally
	// restricted to one month.
	CountByEmployee(ctx context.Context, employeeID string, period *Period) (Counts, error)
}
