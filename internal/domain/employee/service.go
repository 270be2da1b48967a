package employee

import (
	"context"
)

// EmployeeService covers the directory mutations not handled by the auth
// lifecycle.
type EmployeeService interface {
	// AssignCard binds an RFID card to the employee.
	AssignCard(ctx context.Context, employeeID string, req AssignCardRequest) error
}
