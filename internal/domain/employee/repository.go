package employee

import (
	"context"
)

// EmployeeRepository defines directory lookups used by the presence engine
// and the auth glue. Card numbers are unique across the directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetByCardNumber resolves an RFID card to its employee.
	// Used by the door-access classifier.
	GetByCardNumber(ctx context.Context, cardNumber int64) (Employee, error)

	// GetIDsByNames resolves display names to employee ids, preserving input
	// order and skipping unknown names. Used by part-time category assignment.
	GetIDsByNames(ctx context.Context, names []string) ([]string, error)

	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	AssignCard(ctx context.Context, id string, cardNumber int64) error
}
