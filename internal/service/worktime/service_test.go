package worktime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
)

type fakeWorkTimeRepo struct {
	fullTime   *worktime.FullTime
	categories map[string]worktime.PartTimeCategory
}

func newFakeWorkTimeRepo() *fakeWorkTimeRepo {
	return &fakeWorkTimeRepo{categories: make(map[string]worktime.PartTimeCategory)}
}

func (r *fakeWorkTimeRepo) GetFullTime(ctx context.Context) (*worktime.FullTime, error) {
	return r.fullTime, nil
}

func (r *fakeWorkTimeRepo) SetFullTime(ctx context.Context, ft worktime.FullTime) error {
	r.fullTime = &ft
	return nil
}

func (r *fakeWorkTimeRepo) GetCategoryByEmployee(ctx context.Context, employeeID string) (*worktime.PartTimeCategory, error) {
	for _, cat := range r.categories {
		for _, id := range cat.EmployeeIDs {
			if id == employeeID {
				c := cat
				return &c, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeWorkTimeRepo) GetCategory(ctx context.Context, category string) (*worktime.PartTimeCategory, error) {
	cat, ok := r.categories[category]
	if !ok {
		return nil, worktime.ErrCategoryNotFound
	}
	return &cat, nil
}

func (r *fakeWorkTimeRepo) CountCategories(ctx context.Context) (int, error) {
	return len(r.categories), nil
}

func (r *fakeWorkTimeRepo) SaveCategory(ctx context.Context, cat worktime.PartTimeCategory) error {
	r.categories[cat.Category] = cat
	return nil
}

func (r *fakeWorkTimeRepo) DeleteCategory(ctx context.Context, category string) error {
	if _, ok := r.categories[category]; !ok {
		return worktime.ErrCategoryNotFound
	}
	delete(r.categories, category)
	return nil
}

type fakeDirectory struct {
	idsByName map[string]string
}

func (r *fakeDirectory) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeDirectory) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeDirectory) GetByCardNumber(ctx context.Context, cardNumber int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrCardNotFound
}

func (r *fakeDirectory) GetIDsByNames(ctx context.Context, names []string) ([]string, error) {
	var ids []string
	for _, name := range names {
		if id, ok := r.idsByName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeDirectory) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (r *fakeDirectory) AssignCard(ctx context.Context, id string, cardNumber int64) error {
	return nil
}

func defaultSchedule() worktime.Schedule {
	return worktime.Schedule{
		WorkStart:    worktime.DayTime{Hour: 10},
		ExpectedExit: worktime.DayTime{Hour: 18},
	}
}

func TestEffectiveSchedule_FallsBackToDefaults(t *testing.T) {
	svc := NewWorkTimeService(newFakeWorkTimeRepo(), &fakeDirectory{}, defaultSchedule())

	sched, err := svc.EffectiveSchedule(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", sched.WorkStart.String())
	assert.Equal(t, "18:00:00", sched.ExpectedExit.String())
}

func TestEffectiveSchedule_FullTimeOverridesDefaults(t *testing.T) {
	repo := newFakeWorkTimeRepo()
	repo.fullTime = &worktime.FullTime{
		EntryTime: worktime.DayTime{Hour: 8},
		ExitTime:  worktime.DayTime{Hour: 16},
	}
	svc := NewWorkTimeService(repo, &fakeDirectory{}, defaultSchedule())

	sched, err := svc.EffectiveSchedule(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 8, sched.WorkStart.Hour)
	assert.Equal(t, 16, sched.ExpectedExit.Hour)
}

func TestEffectiveSchedule_PartTimeCategoryWins(t *testing.T) {
	repo := newFakeWorkTimeRepo()
	repo.fullTime = &worktime.FullTime{
		EntryTime: worktime.DayTime{Hour: 8},
		ExitTime:  worktime.DayTime{Hour: 16},
	}
	repo.categories["A"] = worktime.PartTimeCategory{
		Category:    "A",
		EntryTime:   worktime.DayTime{Hour: 13},
		ExitTime:    worktime.DayTime{Hour: 21},
		EmployeeIDs: []string{"emp-1"},
	}
	svc := NewWorkTimeService(repo, &fakeDirectory{}, defaultSchedule())

	sched, err := svc.EffectiveSchedule(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 13, sched.WorkStart.Hour)
	assert.Equal(t, 21, sched.ExpectedExit.Hour)

	// A full-timer keeps the full-time schedule
	sched, err = svc.EffectiveSchedule(context.Background(), "emp-2")
	require.NoError(t, err)
	assert.Equal(t, 8, sched.WorkStart.Hour)
}

func TestAddPartTime_NamesCategoriesInOrder(t *testing.T) {
	repo := newFakeWorkTimeRepo()
	dir := &fakeDirectory{idsByName: map[string]string{"Alice": "emp-1", "Bob": "emp-2"}}
	svc := NewWorkTimeService(repo, dir, defaultSchedule())

	resp, err := svc.AddPartTime(context.Background(), worktime.PartTimeRequest{
		EntryTime: "13:00:00",
		ExitTime:  "21:00:00",
		Name:      "Alice, Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Category)
	assert.Equal(t, "13:00:00", resp.EntryTime)

	saved, err := repo.GetCategory(context.Background(), "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"emp-1", "emp-2"}, saved.EmployeeIDs)

	resp, err = svc.AddPartTime(context.Background(), worktime.PartTimeRequest{
		EntryTime: "06:00:00",
		ExitTime:  "14:00:00",
		Name:      "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", resp.Category)
}

func TestAddPartTime_NoMatchingEmployees(t *testing.T) {
	svc := NewWorkTimeService(newFakeWorkTimeRepo(), &fakeDirectory{}, defaultSchedule())

	_, err := svc.AddPartTime(context.Background(), worktime.PartTimeRequest{
		EntryTime: "13:00:00",
		ExitTime:  "21:00:00",
		Name:      "Nobody",
	})
	assert.ErrorIs(t, err, worktime.ErrNoEmployeesMatch)
}

func TestUpdatePartTime_UnknownCategory(t *testing.T) {
	dir := &fakeDirectory{idsByName: map[string]string{"Alice": "emp-1"}}
	svc := NewWorkTimeService(newFakeWorkTimeRepo(), dir, defaultSchedule())

	err := svc.UpdatePartTime(context.Background(), "Z", worktime.PartTimeRequest{
		EntryTime: "13:00:00",
		ExitTime:  "21:00:00",
		Name:      "Alice",
	})
	assert.ErrorIs(t, err, worktime.ErrCategoryNotFound)
}

func TestSetFullTime_ValidationFailure(t *testing.T) {
	svc := NewWorkTimeService(newFakeWorkTimeRepo(), &fakeDirectory{}, defaultSchedule())

	err := svc.SetFullTime(context.Background(), worktime.FullTimeRequest{
		EntryTime: "not-a-time",
		ExitTime:  "18:00:00",
	})
	require.Error(t, err)
}
