package presence

import (
	"context"
)

// PresenceService is the attendance engine: door-access classification,
// manual entry/exit recording, and the derived reporting views.
type PresenceService interface {
	// DoorAccess classifies one RFID event as entry, exit, or wait and
	// applies at most one record mutation.
	DoorAccess(ctx context.Context, req DoorAccessRequest) (DoorAccessResponse, error)

	// RecordEntry writes the entry side of today's record for the
	// authenticated employee.
	RecordEntry(ctx context.Context, req EntryRequest) (ButtonStateResponse, error)

	// RecordExit patches the exit side of the matching open record.
	RecordExit(ctx context.Context, req ExitRequest) (ButtonStateResponse, error)

	// History lists the authenticated employee's records newest-first.
	History(ctx context.Context) (HistoryResponse, error)

	// Statistic derives the percentage snapshot for the authenticated
	// employee in the given mode.
	Statistic(ctx context.Context, mode StatisticMode) (StatisticResponse, error)

	// Dashboard lists all records for the admin view.
	Dashboard(ctx context.Context) ([]DashboardRow, error)
}
