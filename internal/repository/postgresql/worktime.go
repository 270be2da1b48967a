package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/database"
)

type workTimeRepository struct {
	db *database.DB
}

func NewWorkTimeRepository(db *database.DB) worktime.WorkTimeRepository {
	return &workTimeRepository{db: db}
}

// Schedule times are stored as HH:MM:SS text and parsed on read; DayTime is
// the only unit the engine compares in.

// GetFullTime implements worktime.WorkTimeRepository.
func (r *workTimeRepository) GetFullTime(ctx context.Context) (*worktime.FullTime, error) {
	q := GetQuerier(ctx, r.db)

	var entryStr, exitStr string
	var ft worktime.FullTime
	err := q.QueryRow(ctx, `
		SELECT entry_time, exit_time, updated_at FROM full_time_schedule LIMIT 1
	`).Scan(&entryStr, &exitStr, &ft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get full-time schedule: %w", err)
	}

	if ft.EntryTime, err = worktime.ParseDayTime(entryStr); err != nil {
		return nil, fmt.Errorf("corrupt full-time entry_time: %w", err)
	}
	if ft.ExitTime, err = worktime.ParseDayTime(exitStr); err != nil {
		return nil, fmt.Errorf("corrupt full-time exit_time: %w", err)
	}

	return &ft, nil
}

// SetFullTime implements worktime.WorkTimeRepository. The schedule is a
// singleton row.
func (r *workTimeRepository) SetFullTime(ctx context.Context, ft worktime.FullTime) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO full_time_schedule (singleton, entry_time, exit_time)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			updated_at = NOW()
	`, ft.EntryTime.String(), ft.ExitTime.String())
	if err != nil {
		return fmt.Errorf("failed to set full-time schedule: %w", err)
	}

	return nil
}

func (r *workTimeRepository) scanCategory(ctx context.Context, q database.Querier, category string, entryStr, exitStr string) (*worktime.PartTimeCategory, error) {
	cat := worktime.PartTimeCategory{Category: category}

	var err error
	if cat.EntryTime, err = worktime.ParseDayTime(entryStr); err != nil {
		return nil, fmt.Errorf("corrupt part-time entry_time: %w", err)
	}
	if cat.ExitTime, err = worktime.ParseDayTime(exitStr); err != nil {
		return nil, fmt.Errorf("corrupt part-time exit_time: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT employee_id FROM part_timers WHERE category = $1
	`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list part-timers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan part-timer: %w", err)
		}
		cat.EmployeeIDs = append(cat.EmployeeIDs, id)
	}

	return &cat, rows.Err()
}

// GetCategoryByEmployee implements worktime.WorkTimeRepository.
func (r *workTimeRepository) GetCategoryByEmployee(ctx context.Context, employeeID string) (*worktime.PartTimeCategory, error) {
	q := GetQuerier(ctx, r.db)

	var category, entryStr, exitStr string
	err := q.QueryRow(ctx, `
		SELECT c.category, c.entry_time, c.exit_time
		FROM part_time_categories c
		JOIN part_timers pt ON pt.category = c.category
		WHERE pt.employee_id = $1
		LIMIT 1
	`, employeeID).Scan(&category, &entryStr, &exitStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by employee: %w", err)
	}

	return r.scanCategory(ctx, q, category, entryStr, exitStr)
}

// GetCategory implements worktime.WorkTimeRepository.
func (r *workTimeRepository) GetCategory(ctx context.Context, category string) (*worktime.PartTimeCategory, error) {
	q := GetQuerier(ctx, r.db)

	var entryStr, exitStr string
	err := q.QueryRow(ctx, `
		SELECT entry_time, exit_time FROM part_time_categories WHERE category = $1
	`, category).Scan(&entryStr, &exitStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worktime.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.scanCategory(ctx, q, category, entryStr, exitStr)
}

// CountCategories implements worktime.WorkTimeRepository.
func (r *workTimeRepository) CountCategories(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM part_time_categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// SaveCategory implements worktime.WorkTimeRepository.
func (r *workTimeRepository) SaveCategory(ctx context.Context, cat worktime.PartTimeCategory) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		_, err := q.Exec(txCtx, `
			INSERT INTO part_time_categories (category, entry_time, exit_time)
			VALUES ($1, $2, $3)
			ON CONFLICT (category) DO UPDATE SET
				entry_time = EXCLUDED.entry_time,
				exit_time = EXCLUDED.exit_time,
				updated_at = NOW()
		`, cat.Category, cat.EntryTime.String(), cat.ExitTime.String())
		if err != nil {
			return fmt.Errorf("failed to upsert category: %w", err)
		}

		if _, err := q.Exec(txCtx, `DELETE FROM part_timers WHERE category = $1`, cat.Category); err != nil {
			return fmt.Errorf("failed to clear part-timers: %w", err)
		}

		for _, employeeID := range cat.EmployeeIDs {
			_, err := q.Exec(txCtx, `
				INSERT INTO part_timers (category, employee_id) VALUES ($1, $2)
			`, cat.Category, employeeID)
			if err != nil {
				return fmt.Errorf("failed to insert part-timer: %w", err)
			}
		}

		return nil
	})
}

// DeleteCategory implements worktime.WorkTimeRepository.
func (r *workTimeRepository) DeleteCategory(ctx context.Context, category string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM part_timers WHERE category = $1`, category); err != nil {
			return fmt.Errorf("failed to delete part-timers: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM part_time_categories WHERE category = $1`, category)
		if err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return worktime.ErrCategoryNotFound
		}

		return nil
	})
}
