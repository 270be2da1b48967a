package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/sse"
)

// workingDaysPerMonth backs the all-time presence/absent split. The reporting
// convention assumes 26 working days in a month.
const workingDaysPerMonth = 26

type presenceService struct {
	presenceRepo presence.PresenceRepository
	employeeRepo employee.EmployeeRepository
	workTimeSvc  worktime.WorkTimeService
	hub          *sse.Hub
	loc          *time.Location
	siteLat      float64
	siteLng      float64
	now          func() time.Time
}

func NewPresenceService(
	presenceRepo presence.PresenceRepository,
	employeeRepo employee.EmployeeRepository,
	workTimeSvc worktime.WorkTimeService,
	hub *sse.Hub,
	loc *time.Location,
	siteLat, siteLng float64,
) presence.PresenceService {
	return &presenceService{
		presenceRepo: presenceRepo,
		employeeRepo: employeeRepo,
		workTimeSvc:  workTimeSvc,
		hub:          hub,
		loc:          loc,
		siteLat:      siteLat,
		siteLng:      siteLng,
		now:          time.Now,
	}
}

func (s *presenceService) employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", auth.ErrInvalidToken
	}

	return uid, nil
}

// dayOf truncates t to midnight of its calendar day in the site timezone.
func (s *presenceService) dayOf(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// lateMinutes counts every started minute from the work-start threshold to
// the entry, both ends inclusive: 10:30 against a 10:00 threshold owes 31
// minutes. Zero when the entry is on time.
func lateMinutes(entry, workStart worktime.DayTime) int {
	diff := entry.Minutes() - workStart.Minutes()
	if diff <= 0 {
		return 0
	}
	return diff + 1
}

// classifyEntry derives the status and the expected-exit instant for an entry
// at the given moment. A late arrival owes an equivalent late departure.
func classifyEntry(at time.Time, day time.Time, sched worktime.Schedule, loc *time.Location) (presence.Status, time.Time) {
	status := presence.StatusOnTime
	expected := sched.ExpectedExit.On(day, loc)

	if extra := lateMinutes(worktime.DayTimeOf(at.In(loc)), sched.WorkStart); extra > 0 {
		status = presence.StatusLate
		expected = expected.Add(time.Duration(extra) * time.Minute)
	}

	return status, expected
}

// DoorAccess implements presence.PresenceService. One reader event causes at
// most one record mutation; the day's record decides which side the event
// lands on.
func (s *presenceService) DoorAccess(ctx context.Context, req presence.DoorAccessRequest) (presence.DoorAccessResponse, error) {
	emp, err := s.employeeRepo.GetByCardNumber(ctx, req.CardNumber)
	if err != nil {
		return presence.DoorAccessResponse{}, err
	}

	at := req.At.In(s.loc)
	day := s.dayOf(at)

	rec, err := s.presenceRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return presence.DoorAccessResponse{}, err
	}

	switch {
	case rec == nil:
		sched, err := s.workTimeSvc.EffectiveSchedule(ctx, emp.ID)
		if err != nil {
			return presence.DoorAccessResponse{}, err
		}

		status, expected := classifyEntry(at, day, sched, s.loc)

		saved, err := s.presenceRepo.Upsert(ctx, presence.Presence{
			EmployeeID:     emp.ID,
			Date:           day,
			DayName:        at.Weekday().String(),
			EntryTime:      at,
			EntryLatitude:  s.siteLat,
			EntryLongitude: s.siteLng,
			Status:         status,
			ExpectedExit:   expected,
			ButtonState:    true,
		})
		if err != nil {
			return presence.DoorAccessResponse{}, fmt.Errorf("failed to record door entry: %w", err)
		}

		s.publishDoorEvent(presence.OutcomeEntry, emp, saved.Status, at)

		return presence.DoorAccessResponse{
			Outcome: presence.OutcomeEntry,
			Message: fmt.Sprintf("Access confirmed. Welcome, %s. Please come in.", emp.Name),
		}, nil

	case !rec.Open():
		return presence.DoorAccessResponse{}, presence.ErrAlreadyExited

	case worktime.DayTimeOf(at).Minutes() < worktime.DayTimeOf(rec.ExpectedExit.In(s.loc)).Minutes():
		// Leaving before the expected exit is a normal negative result,
		// not an error. Nothing is written.
		return presence.DoorAccessResponse{
			Outcome: presence.OutcomeWait,
			Message: fmt.Sprintf("Please wait, %s. Your expected exit time is %s.", emp.Name, rec.ExpectedExit.In(s.loc).Format("15:04:05")),
		}, nil

	default:
		err := s.presenceRepo.PatchExit(ctx, emp.ID, day, at, s.siteLat, s.siteLng, nil)
		if err != nil {
			return presence.DoorAccessResponse{}, fmt.Errorf("failed to record door exit: %w", err)
		}

		s.publishDoorEvent(presence.OutcomeExit, emp, rec.Status, at)

		return presence.DoorAccessResponse{
			Outcome: presence.OutcomeExit,
			Message: fmt.Sprintf("Access confirmed. Goodbye, %s.", emp.Name),
		}, nil
	}
}

func (s *presenceService) publishDoorEvent(outcome presence.DoorOutcome, emp employee.Employee, status presence.Status, at time.Time) {
	s.hub.Publish(sse.Event{
		Event: "door_access",
		Data: map[string]interface{}{
			"outcome": string(outcome),
			"name":    emp.Name,
			"status":  string(status),
			"time":    at.Format("15:04:05"),
		},
	})
}

// RecordEntry implements presence.PresenceService. The status comes from the
// client; the server only derives the expected-exit threshold from it.
func (s *presenceService) RecordEntry(ctx context.Context, req presence.EntryRequest) (presence.ButtonStateResponse, error) {
	if err := req.Validate(); err != nil {
		return presence.ButtonStateResponse{}, err
	}

	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}

	clock, err := worktime.ParseDayTime(req.Time)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}

	day := time.Date(req.Year, time.Month(req.Month), req.Date, 0, 0, 0, 0, s.loc)
	entryTime := clock.On(day, s.loc)

	sched, err := s.workTimeSvc.EffectiveSchedule(ctx, employeeID)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}

	expected := sched.ExpectedExit.On(day, s.loc)
	if req.Status == string(presence.StatusLate) {
		if extra := lateMinutes(clock, sched.WorkStart); extra > 0 {
			expected = expected.Add(time.Duration(extra) * time.Minute)
		}
	}

	_, err = s.presenceRepo.Upsert(ctx, presence.Presence{
		EmployeeID:     employeeID,
		Date:           day,
		DayName:        req.Day,
		EntryTime:      entryTime,
		EntryLatitude:  req.Latitude,
		EntryLongitude: req.Longitude,
		EntryNote:      req.Note,
		Status:         presence.Status(req.Status),
		ExpectedExit:   expected,
		ButtonState:    true,
	})
	if err != nil {
		return presence.ButtonStateResponse{}, fmt.Errorf("failed to record entry: %w", err)
	}

	return presence.ButtonStateResponse{ButtonState: true}, nil
}

// RecordExit implements presence.PresenceService.
func (s *presenceService) RecordExit(ctx context.Context, req presence.ExitRequest) (presence.ButtonStateResponse, error) {
	if err := req.Validate(); err != nil {
		return presence.ButtonStateResponse{}, err
	}

	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}

	clock, err := worktime.ParseDayTime(req.Time)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}

	day := time.Date(req.Year, time.Month(req.Month), req.Date, 0, 0, 0, 0, s.loc)

	rec, err := s.presenceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return presence.ButtonStateResponse{}, err
	}
	if rec == nil {
		return presence.ButtonStateResponse{}, presence.ErrNoOpenRecord
	}
	if !rec.Open() {
		return presence.ButtonStateResponse{}, presence.ErrAlreadyExited
	}

	err = s.presenceRepo.PatchExit(ctx, employeeID, day, clock.On(day, s.loc), req.Latitude, req.Longitude, req.Note)
	if err != nil {
		return presence.ButtonStateResponse{}, fmt.Errorf("failed to record exit: %w", err)
	}

	return presence.ButtonStateResponse{ButtonState: false}, nil
}

// History implements presence.PresenceService.
func (s *presenceService) History(ctx context.Context) (presence.HistoryResponse, error) {
	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return presence.HistoryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return presence.HistoryResponse{}, err
	}

	recs, err := s.presenceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return presence.HistoryResponse{}, err
	}

	items := make([]presence.HistoryItem, 0, len(recs))
	for _, rec := range recs {
		item := presence.HistoryItem{
			DayDate:   rec.Date.In(s.loc).Format("Monday, 2 January 2006"),
			EntryTime: rec.EntryTime.In(s.loc).Format("15:04:05"),
			Status:    string(rec.Status),
		}
		if rec.ExitTime != nil {
			item.ExitTime = rec.ExitTime.In(s.loc).Format("15:04:05")
		}
		items = append(items, item)
	}

	return presence.HistoryResponse{
		Name:        emp.Name,
		Position:    emp.Position,
		HistoryList: items,
	}, nil
}

// Statistic implements presence.PresenceService. An empty history yields an
// all-zero snapshot, never a division error.
func (s *presenceService) Statistic(ctx context.Context, mode presence.StatisticMode) (presence.StatisticResponse, error) {
	if mode == "" {
		mode = presence.StatisticModeMonth
	}

	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return presence.StatisticResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return presence.StatisticResponse{}, err
	}

	var period *presence.Period
	if mode == presence.StatisticModeMonth {
		now := s.now().In(s.loc)
		period = &presence.Period{Month: now.Month(), Year: now.Year()}
	}

	counts, err := s.presenceRepo.CountByEmployee(ctx, employeeID, period)
	if err != nil {
		return presence.StatisticResponse{}, err
	}

	resp := presence.StatisticResponse{
		Name:     emp.Name,
		Position: emp.Position,
	}
	if denom := counts.OnTime + counts.Late; denom > 0 {
		resp.OnTimePercent = float64(counts.OnTime) / float64(denom) * 100
		resp.LatePercent = float64(counts.Late) / float64(denom) * 100
	}

	if mode == presence.StatisticModeAll {
		presencePct := float64(counts.Presence) / workingDaysPerMonth * 100
		absentPct := 100 - presencePct
		resp.PresencePercent = &presencePct
		resp.AbsentPercent = &absentPct
	}

	return resp, nil
}

// Dashboard implements presence.PresenceService.
func (s *presenceService) Dashboard(ctx context.Context) ([]presence.DashboardRow, error) {
	recs, err := s.presenceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]presence.DashboardRow, 0, len(recs))
	for _, rec := range recs {
		row := presence.DashboardRow{
			Date:      rec.Date.In(s.loc).Format("2 January 2006"),
			EntryTime: rec.EntryTime.In(s.loc).Format("15:04:05"),
			ExitTime:  "-",
			Status:    string(rec.Status),
		}
		if rec.EmployeeName != nil {
			row.Name = *rec.EmployeeName
		}
		if rec.ExitTime != nil {
			row.ExitTime = rec.ExitTime.In(s.loc).Format("15:04:05")
		}
		rows = append(rows, row)
	}

	return rows, nil
}
