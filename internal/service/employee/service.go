package employee

import (
	"context"

	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

// AssignCard implements employee.EmployeeService.
func (s *employeeService) AssignCard(ctx context.Context, employeeID string, req employee.AssignCardRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.employeeRepo.AssignCard(ctx, employeeID, req.CardNumber)
}
