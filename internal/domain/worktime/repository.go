package worktime

import (
	"context"
)

// WorkTimeRepository stores the full-time schedule singleton and the
// part-time categories with their membership.
type WorkTimeRepository interface {
	// GetFullTime returns nil when no schedule has been configured yet.
	GetFullTime(ctx context.Context) (*FullTime, error)

	SetFullTime(ctx context.Context, ft FullTime) error

	// GetCategoryByEmployee returns nil when the employee is not a part-timer.
	GetCategoryByEmployee(ctx context.Context, employeeID string) (*PartTimeCategory, error)

	GetCategory(ctx context.Context, category string) (*PartTimeCategory, error)

	// CountCategories backs the A, B, C... naming of new categories.
	CountCategories(ctx context.Context) (int, error)

	// SaveCategory upserts the category times and replaces its membership.
	SaveCategory(ctx context.Context, cat PartTimeCategory) error

	DeleteCategory(ctx context.Context, category string) error
}
