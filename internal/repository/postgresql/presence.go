package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/database"
)

type presenceRepository struct {
	db *database.DB
}

func NewPresenceRepository(db *database.DB) presence.PresenceRepository {
	return &presenceRepository{db: db}
}

const presenceColumns = `id, employee_id, date, day_name, entry_time, exit_time,
	   entry_latitude, entry_longitude, exit_latitude, exit_longitude,
	   entry_note, exit_note, status, expected_exit, button_state,
	   created_at, updated_at`

func scanPresence(row pgx.Row) (presence.Presence, error) {
	var rec presence.Presence
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.DayName, &rec.EntryTime, &rec.ExitTime,
		&rec.EntryLatitude, &rec.EntryLongitude, &rec.ExitLatitude, &rec.ExitLongitude,
		&rec.EntryNote, &rec.ExitNote, &rec.Status, &rec.ExpectedExit, &rec.ButtonState,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetByEmployeeAndDate implements presence.PresenceRepository.
func (r *presenceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*presence.Presence, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM presences
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`, presenceColumns)

	rec, err := scanPresence(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get presence by employee and date: %w", err)
	}

	return &rec, nil
}

// Upsert implements presence.PresenceRepository. The (employee_id, date)
// unique constraint is the per-key atomicity the engine leans on: a same-day
// re-entry rewrites the entry side instead of inserting a second row.
func (r *presenceRepository) Upsert(ctx context.Context, rec presence.Presence) (presence.Presence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO presences (
			employee_id, date, day_name, entry_time,
			entry_latitude, entry_longitude, entry_note,
			status, expected_exit, button_state,
			exit_time, exit_latitude, exit_longitude, exit_note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL, NULL, NULL, NULL
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			day_name = EXCLUDED.day_name,
			entry_time = EXCLUDED.entry_time,
			entry_latitude = EXCLUDED.entry_latitude,
			entry_longitude = EXCLUDED.entry_longitude,
			entry_note = EXCLUDED.entry_note,
			status = EXCLUDED.status,
			expected_exit = EXCLUDED.expected_exit,
			button_state = EXCLUDED.button_state,
			exit_time = NULL,
			exit_latitude = NULL,
			exit_longitude = NULL,
			exit_note = NULL,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.DayName,
		rec.EntryTime,
		rec.EntryLatitude,
		rec.EntryLongitude,
		rec.EntryNote,
		rec.Status,
		rec.ExpectedExit,
		rec.ButtonState,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return presence.Presence{}, fmt.Errorf("failed to upsert presence: %w", err)
	}

	return rec, nil
}

// PatchExit implements presence.PresenceRepository.
func (r *presenceRepository) PatchExit(ctx context.Context, employeeID string, date time.Time, exitTime time.Time, lat, lng float64, note *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE presences
		SET exit_time = $1,
			exit_latitude = $2,
			exit_longitude = $3,
			exit_note = $4,
			button_state = FALSE,
			updated_at = NOW()
		WHERE employee_id = $5 AND date = $6
	`, exitTime, lat, lng, note, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to patch exit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return presence.ErrRecordNotFound
	}

	return nil
}

// ListByEmployee implements presence.PresenceRepository.
func (r *presenceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]presence.Presence, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM presences
		WHERE employee_id = $1
		ORDER BY date DESC
	`, presenceColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presences: %w", err)
	}
	defer rows.Close()

	var recs []presence.Presence
	for rows.Next() {
		rec, err := scanPresence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan presence: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// ListAll implements presence.PresenceRepository.
func (r *presenceRepository) ListAll(ctx context.Context) ([]presence.Presence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.date, p.day_name, p.entry_time, p.exit_time,
			   p.entry_latitude, p.entry_longitude, p.exit_latitude, p.exit_longitude,
			   p.entry_note, p.exit_note, p.status, p.expected_exit, p.button_state,
			   p.created_at, p.updated_at, e.name
		FROM presences p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY p.date DESC, p.entry_time DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all presences: %w", err)
	}
	defer rows.Close()

	var recs []presence.Presence
	for rows.Next() {
		var rec presence.Presence
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.DayName, &rec.EntryTime, &rec.ExitTime,
			&rec.EntryLatitude, &rec.EntryLongitude, &rec.ExitLatitude, &rec.ExitLongitude,
			&rec.EntryNote, &rec.ExitNote, &rec.Status, &rec.ExpectedExit, &rec.ButtonState,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan presence: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// CountByEmployee implements presence.PresenceRepository.
func (r *presenceRepository) CountByEmployee(ctx context.Context, employeeID string, period *presence.Period) (presence.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = $2),
			   COUNT(*) FILTER (WHERE status = $3)
		FROM presences
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID, presence.StatusOnTime, presence.StatusLate}

	if period != nil {
		query += ` AND EXTRACT(MONTH FROM date) = $4 AND EXTRACT(YEAR FROM date) = $5`
		args = append(args, int(period.Month), period.Year)
	}

	var counts presence.Counts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.Presence, &counts.OnTime, &counts.Late); err != nil {
		return presence.Counts{}, fmt.Errorf("failed to count presences: %w", err)
	}

	return counts, nil
}
