package worktime

import (
	"context"
)

// WorkTimeService resolves effective schedules and manages them for admins.
type WorkTimeService interface {
	// EffectiveSchedule resolves the thresholds for one employee:
	// part-time category first, then the full-time schedule, then the
	// configured defaults.
	EffectiveSchedule(ctx context.Context, employeeID string) (Schedule, error)

	// MyWorkTime returns the effective schedule of the authenticated employee.
	MyWorkTime(ctx context.Context) (WorkTimeResponse, error)

	SetFullTime(ctx context.Context, req FullTimeRequest) error

	// AddPartTime creates the next category (A, B, ...) and assigns the
	// named employees to it.
	AddPartTime(ctx context.Context, req PartTimeRequest) (PartTimeResponse, error)

	UpdatePartTime(ctx context.Context, category string, req PartTimeRequest) error

	DeletePartTime(ctx context.Context, category string) error
}
