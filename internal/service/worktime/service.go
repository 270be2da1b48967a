package worktime

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
)

type workTimeService struct {
	workTimeRepo worktime.WorkTimeRepository
	employeeRepo employee.EmployeeRepository
	defaults     worktime.Schedule
}

// NewWorkTimeService wires the schedule resolver. defaults is the configured
// fallback used when no schedule has been set up yet.
func NewWorkTimeService(
	workTimeRepo worktime.WorkTimeRepository,
	employeeRepo employee.EmployeeRepository,
	defaults worktime.Schedule,
) worktime.WorkTimeService {
	return &workTimeService{
		workTimeRepo: workTimeRepo,
		employeeRepo: employeeRepo,
		defaults:     defaults,
	}
}

// EffectiveSchedule implements worktime.WorkTimeService. Resolution order:
// the employee's part-time category, then the full-time singleton, then the
// configured defaults.
func (s *workTimeService) EffectiveSchedule(ctx context.Context, employeeID string) (worktime.Schedule, error) {
	cat, err := s.workTimeRepo.GetCategoryByEmployee(ctx, employeeID)
	if err != nil {
		return worktime.Schedule{}, err
	}
	if cat != nil {
		return worktime.Schedule{WorkStart: cat.EntryTime, ExpectedExit: cat.ExitTime}, nil
	}

	ft, err := s.workTimeRepo.GetFullTime(ctx)
	if err != nil {
		return worktime.Schedule{}, err
	}
	if ft != nil {
		return worktime.Schedule{WorkStart: ft.EntryTime, ExpectedExit: ft.ExitTime}, nil
	}

	return s.defaults, nil
}

// MyWorkTime implements worktime.WorkTimeService.
func (s *workTimeService) MyWorkTime(ctx context.Context) (worktime.WorkTimeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return worktime.WorkTimeResponse{}, auth.ErrInvalidToken
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return worktime.WorkTimeResponse{}, auth.ErrInvalidToken
	}

	sched, err := s.EffectiveSchedule(ctx, uid)
	if err != nil {
		return worktime.WorkTimeResponse{}, err
	}

	return worktime.WorkTimeResponse{
		EntryTime: sched.WorkStart.String(),
		ExitTime:  sched.ExpectedExit.String(),
	}, nil
}

// SetFullTime implements worktime.WorkTimeService.
func (s *workTimeService) SetFullTime(ctx context.Context, req worktime.FullTimeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entry, err := worktime.ParseDayTime(req.EntryTime)
	if err != nil {
		return err
	}
	exit, err := worktime.ParseDayTime(req.ExitTime)
	if err != nil {
		return err
	}

	return s.workTimeRepo.SetFullTime(ctx, worktime.FullTime{EntryTime: entry, ExitTime: exit})
}

// AddPartTime implements worktime.WorkTimeService. Categories are named in
// creation order: A, B, C and so on.
func (s *workTimeService) AddPartTime(ctx context.Context, req worktime.PartTimeRequest) (worktime.PartTimeResponse, error) {
	if err := req.Validate(); err != nil {
		return worktime.PartTimeResponse{}, err
	}

	cat, err := s.buildCategory(ctx, req)
	if err != nil {
		return worktime.PartTimeResponse{}, err
	}

	count, err := s.workTimeRepo.CountCategories(ctx)
	if err != nil {
		return worktime.PartTimeResponse{}, err
	}
	cat.Category = string(rune('A' + count))

	if err := s.workTimeRepo.SaveCategory(ctx, cat); err != nil {
		return worktime.PartTimeResponse{}, fmt.Errorf("failed to save category: %w", err)
	}

	return worktime.PartTimeResponse{
		Category:  cat.Category,
		EntryTime: cat.EntryTime.String(),
		ExitTime:  cat.ExitTime.String(),
	}, nil
}

// UpdatePartTime implements worktime.WorkTimeService.
func (s *workTimeService) UpdatePartTime(ctx context.Context, category string, req worktime.PartTimeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Category must exist before an update.
	if _, err := s.workTimeRepo.GetCategory(ctx, category); err != nil {
		return err
	}

	cat, err := s.buildCategory(ctx, req)
	if err != nil {
		return err
	}
	cat.Category = category

	if err := s.workTimeRepo.SaveCategory(ctx, cat); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return nil
}

// DeletePartTime implements worktime.WorkTimeService.
func (s *workTimeService) DeletePartTime(ctx context.Context, category string) error {
	return s.workTimeRepo.DeleteCategory(ctx, category)
}

func (s *workTimeService) buildCategory(ctx context.Context, req worktime.PartTimeRequest) (worktime.PartTimeCategory, error) {
	entry, err := worktime.ParseDayTime(req.EntryTime)
	if err != nil {
		return worktime.PartTimeCategory{}, err
	}
	exit, err := worktime.ParseDayTime(req.ExitTime)
	if err != nil {
		return worktime.PartTimeCategory{}, err
	}

	ids, err := s.employeeRepo.GetIDsByNames(ctx, req.Names())
	if err != nil {
		return worktime.PartTimeCategory{}, err
	}
	if len(ids) == 0 {
		return worktime.PartTimeCategory{}, worktime.ErrNoEmployeesMatch
	}

	return worktime.PartTimeCategory{
		EntryTime:   entry,
		ExitTime:    exit,
		EmployeeIDs: ids,
	}, nil
}
